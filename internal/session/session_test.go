package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing/iotest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/urdfinertia/internal/config"
	"github.com/san-kum/urdfinertia/internal/console"
	"github.com/san-kum/urdfinertia/internal/session"
	"github.com/san-kum/urdfinertia/internal/shapes"
	"github.com/san-kum/urdfinertia/internal/tensor"
)

func run(input string, opts session.Options) (string, *session.Session, error) {
	var out bytes.Buffer
	s := session.New(console.New(strings.NewReader(input), &out, nil), opts, nil)
	err := s.Run(context.Background())
	return out.String(), s, err
}

func formatted(s shapes.Shape) string {
	m := s.Moments()
	return tensor.Format(m.Ixx, m.Iyy, m.Izz)
}

var _ = Describe("Session", func() {
	menu := session.Menu()

	Describe("menu", func() {
		It("lists the three shapes in code order", func() {
			Expect(menu).To(Equal("Please select one of the following shapes:\n\nSolid Cuboid: 1\nSolid Sphere: 2\nSolid Cylinder: 3"))
		})
	})

	Describe("end-to-end scenarios", func() {
		It("computes a rectangle", func() {
			out, s, err := run("1\n2\n3\n4\n5\nn\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(session.Terminated))

			Expect(out).To(ContainSubstring("Solid Rectangle Selected:\nPlease enter mass:\nPlease enter depth: \nPlease enter width: \nPlease enter height: \n"))
			Expect(out).To(ContainSubstring(formatted(&shapes.Rectangle{Mass: 2, Depth: 3, Width: 4, Height: 5})))
			Expect(out).To(ContainSubstring("ixx=5.666666"))
			Expect(out).To(ContainSubstring("izz=4.166666"))
		})

		It("prints the exact sphere transcript", func() {
			out, _, err := run("2\n10\n2\nn\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())

			want := menu + "\n\n" +
				"Solid Sphere Selected:\n" +
				"Please enter mass:\n" +
				"Please enter radius: \n" +
				"Moment of inertia matrix:\n\n" +
				"ixx=16 ixy=0 ixz=0\n" +
				"iyx=0 iyy=16 iyz=0\n" +
				"izx=0 izy=0 izz=16\n\n" +
				"Feel free to copy/paste this data between the <inertia> tags in your URDF file!\n" +
				"Process another? (Y/N)\n\n"
			Expect(out).To(Equal(want))
		})

		It("computes a cylinder", func() {
			out, _, err := run("3\n5\n1\n2\nN\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(ContainSubstring("Solid Cylinder Selected:\nPlease enter mass:\nPlease enter radius: \nPlease enter height: \n"))
			Expect(out).To(ContainSubstring(formatted(&shapes.Cylinder{Mass: 5, Radius: 1, Height: 2})))
			Expect(out).To(ContainSubstring("izz=2.5\n"))
		})
	})

	Describe("retries", func() {
		It("shows the menu again for unknown codes", func() {
			out, _, err := run("4\n\n 2 \n10\n2\nno\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(out, menu)).To(Equal(3))
			Expect(strings.Count(out, "Selected:")).To(Equal(1))
			Expect(out).NotTo(ContainSubstring("Invalid"))
		})

		It("repeats a field prompt on non-numeric input", func() {
			out, _, err := run("2\nabc\n10\nx\n2\nn\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(out, "Please enter mass:\n")).To(Equal(2))
			Expect(strings.Count(out, "Please enter radius: \n")).To(Equal(2))
			Expect(out).To(ContainSubstring("ixx=16 "))
		})

		It("accepts negative values without complaint", func() {
			out, _, err := run("2\n-10\n2\nn\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("ixx=-16 "))
		})
	})

	Describe("continue prompt", func() {
		It("loops on yes answers", func() {
			out, s, err := run("2\n1\n1\nyes\n2\n1\n1\nY\n2\n1\n1\nNo\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(session.Terminated))
			Expect(strings.Count(out, "Solid Sphere Selected:")).To(Equal(3))
		})

		It("is case sensitive", func() {
			out, _, err := run("2\n1\n1\nYES\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Invalid input! Please enter yes or no(y/n)\n"))
		})

		It("returns to the shape menu after an unrecognised answer in menu mode", func() {
			input := "2\n1\n1\nmaybe\n3\n5\n1\n2\nn\n"
			out, s, err := run(input, session.Options{ContinueMode: config.ContinueMenu})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(session.Terminated))

			Expect(strings.Count(out, "Invalid input!")).To(Equal(1))
			Expect(strings.Count(out, "Process another? (Y/N)")).To(Equal(2))
			Expect(strings.Count(out, menu)).To(Equal(2))

			invalid := strings.Index(out, "Invalid input!")
			Expect(out[invalid:]).To(HavePrefix("Invalid input! Please enter yes or no(y/n)\n" + menu))
		})

		It("asks again after an unrecognised answer in reprompt mode", func() {
			input := "2\n1\n1\nmaybe\n\nY\n2\n1\n1\nN\n"
			out, _, err := run(input, session.Options{ContinueMode: config.ContinueReprompt})
			Expect(err).NotTo(HaveOccurred())

			Expect(strings.Count(out, "Invalid input!")).To(Equal(2))
			Expect(strings.Count(out, "Process another? (Y/N)")).To(Equal(4))
			Expect(strings.Count(out, menu)).To(Equal(2))
		})
	})

	Describe("urdf tag", func() {
		It("prints the inertia element when enabled", func() {
			out, _, err := run("3\n5\n1\n2\nn\n", session.Options{URDFTag: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(MatchRegexp(`<inertia ixx="[0-9.]+" ixy="0" ixz="0" iyy="[0-9.]+" iyz="0" izz="2.5"/>`))
		})

		It("is omitted by default", func() {
			out, _, _ := run("3\n5\n1\n2\nn\n", session.Options{})
			Expect(out).NotTo(ContainSubstring("<inertia ixx"))
		})
	})

	Describe("termination", func() {
		It("ends cleanly when input closes mid-shape", func() {
			out, s, err := run("1\n2\n", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(session.Terminated))
			Expect(out).NotTo(ContainSubstring("Moment of inertia"))
		})

		It("ends cleanly on empty input", func() {
			_, s, err := run("", session.Options{})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(session.Terminated))
		})

		It("reports reader failures", func() {
			boom := errors.New("boom")
			var out bytes.Buffer
			s := session.New(console.New(iotest.ErrReader(boom), &out, nil), session.Options{}, nil)

			err := s.Run(context.Background())
			Expect(err).To(MatchError(boom))
			var re *console.ReadError
			Expect(errors.As(err, &re)).To(BeTrue())
			Expect(s.State()).To(Equal(session.Running))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			var out bytes.Buffer
			s := session.New(console.New(strings.NewReader("1\n"), &out, nil), session.Options{}, nil)
			Expect(s.Run(ctx)).To(MatchError(context.Canceled))
			Expect(out.Len()).To(BeZero())
		})

		It("returns the context error when cancelled during a read", func() {
			pr, pw := io.Pipe()
			defer pw.Close()
			ctx, cancel := context.WithCancel(context.Background())

			var out bytes.Buffer
			s := session.New(console.New(console.ContextReader(ctx, pr), &out, nil), session.Options{}, nil)
			time.AfterFunc(20*time.Millisecond, cancel)

			Expect(s.Run(ctx)).To(Equal(context.Canceled))
			Expect(s.State()).To(Equal(session.Running))
		})
	})

	Describe("State", func() {
		It("names its states", func() {
			Expect(session.Running.String()).To(Equal("running"))
			Expect(session.Terminated.String()).To(Equal("terminated"))
		})
	})
})
