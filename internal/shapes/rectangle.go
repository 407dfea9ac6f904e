package shapes

// Rectangle is a solid rectangular prism (cuboid).
type Rectangle struct {
	Mass   float32
	Depth  float32
	Width  float32
	Height float32
}

func NewRectangle() *Rectangle {
	return &Rectangle{}
}

func (r *Rectangle) Name() string {
	return "Rectangle"
}

func (r *Rectangle) Fields() []Field {
	return []Field{
		{Key: "mass", Prompt: "Please enter mass:", Dest: &r.Mass},
		{Key: "depth", Prompt: "Please enter depth: ", Dest: &r.Depth},
		{Key: "width", Prompt: "Please enter width: ", Dest: &r.Width},
		{Key: "height", Prompt: "Please enter height: ", Dest: &r.Height},
	}
}

func (r *Rectangle) Moments() Moments {
	return Moments{
		Ixx: r.Mass * (sq(r.Height) + sq(r.Depth)) / 12,
		Iyy: r.Mass * (sq(r.Width) + sq(r.Height)) / 12,
		Izz: r.Mass * (sq(r.Width) + sq(r.Depth)) / 12,
	}
}
