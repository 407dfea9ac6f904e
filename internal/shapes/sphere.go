package shapes

type Sphere struct {
	Mass   float32
	Radius float32
}

func NewSphere() *Sphere {
	return &Sphere{}
}

func (s *Sphere) Name() string {
	return "Sphere"
}

func (s *Sphere) Fields() []Field {
	return []Field{
		{Key: "mass", Prompt: "Please enter mass:", Dest: &s.Mass},
		{Key: "radius", Prompt: "Please enter radius: ", Dest: &s.Radius},
	}
}

func (s *Sphere) Moments() Moments {
	i := 0.4 * (s.Mass * sq(s.Radius))
	return Moments{Ixx: i, Iyy: i, Izz: i}
}
