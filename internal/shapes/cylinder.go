package shapes

// Cylinder is a solid cylinder whose axis lies along z.
type Cylinder struct {
	Mass   float32
	Radius float32
	Height float32
}

func NewCylinder() *Cylinder {
	return &Cylinder{}
}

func (c *Cylinder) Name() string {
	return "Cylinder"
}

func (c *Cylinder) Fields() []Field {
	return []Field{
		{Key: "mass", Prompt: "Please enter mass:", Dest: &c.Mass},
		{Key: "radius", Prompt: "Please enter radius: ", Dest: &c.Radius},
		{Key: "height", Prompt: "Please enter height: ", Dest: &c.Height},
	}
}

func (c *Cylinder) Moments() Moments {
	ixy := c.Mass * (3*sq(c.Radius) + sq(c.Height)) / 12
	return Moments{
		Ixx: ixy,
		Iyy: ixy,
		Izz: c.Mass * sq(c.Radius) / 2,
	}
}
