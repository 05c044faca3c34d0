// gostsum prints GOST R 34.11-2012 (Streebog) checksums of files or of
// standard input, sha256sum-style. It also carries a selftest command
// running the control examples from the standard and a speed command
// for quick throughput measurements.
package main

import (
	"fmt"
	"hash"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/gostsum/streebog"
)

func main() {
	app := &cli.App{
		Name:      "gostsum",
		Usage:     "print GOST R 34.11-2012 (Streebog) checksums",
		ArgsUsage: "[file ...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bits",
				Aliases: []string{"b"},
				Usage:   "digest size in bits, 256 or 512",
				Value:   512,
			},
		},
		Action: checksum,
		Commands: []*cli.Command{
			{
				Name:   "selftest",
				Usage:  "run the control examples from the standard",
				Action: selftest,
			},
			{
				Name:   "speed",
				Usage:  "measure hashing throughput",
				Action: speed,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "mb",
						Usage: "buffer size in MiB",
						Value: 64,
					},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gostsum:", err)
		os.Exit(1)
	}
}

func newHash(bits int) (hash.Hash, error) {
	switch bits {
	case 256:
		return streebog.New256(), nil
	case 512:
		return streebog.New512(), nil
	}
	return nil, fmt.Errorf("unsupported digest size %d: want 256 or 512", bits)
}

func checksum(ctx *cli.Context) error {
	h, err := newHash(ctx.Int("bits"))
	if err != nil {
		return err
	}
	names := ctx.Args().Slice()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		h.Reset()
		if err := hashInput(h, name); err != nil {
			return err
		}
		fmt.Printf("%x  %s\n", h.Sum(nil), name)
	}
	return nil
}

// hashInput streams one input into h. "-" means standard input.
func hashInput(h hash.Hash, name string) error {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if _, err := io.Copy(h, r); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

// Control examples from the standard: the 63-digit ASCII message and
// the 72-byte CP1251 phrase, in both digest sizes.
var controlExamples = []struct {
	name string
	bits int
	msg  []byte
	want string
}{
	{"512-bit, digits message", 512, digitsMsg,
		"486f64c1917879417fef082b3381a4e211c324f074654c38823a7b76f830ad00fa1fbae42b1285c0352f227524bc9ab16254288dd6863dccd5b9f54a1ad0541b"},
	{"256-bit, digits message", 256, digitsMsg,
		"00557be5e584fd52a449b16b0251d05d27f94ab76cbaa6da890b59d8ef1e159d"},
	{"512-bit, cyrillic message", 512, cyrillicMsg,
		"28fbc9bada033b1460642bdcddb90c3fb3e56c497ccd0f62b8a2ad4935e85f037613966de4ee00531ae60f3b5a47f8dae06915d5f2f194996fcabf2622e6881e"},
	{"256-bit, cyrillic message", 256, cyrillicMsg,
		"508f7e553c06501d749a66fc28c6cac0b005746d97537fa85d9e40904efed29d"},
}

var digitsMsg = []byte("012345678901234567890123456789012345678901234567890123456789012")

var cyrillicMsg = []byte{
	0xd1, 0xe5, 0x20, 0xe2, 0xe5, 0xf2, 0xf0, 0xe8,
	0x2c, 0x20, 0xd1, 0xf2, 0xf0, 0xe8, 0xe1, 0xee,
	0xe6, 0xe8, 0x20, 0xe2, 0xed, 0xf3, 0xf6, 0xe8,
	0x2c, 0x20, 0xe2, 0xe5, 0xfe, 0xf2, 0xfa, 0x20,
	0xf1, 0x20, 0xec, 0xee, 0xf0, 0xff, 0x20, 0xf1,
	0xf2, 0xf0, 0xe5, 0xeb, 0xe0, 0xec, 0xe8, 0x20,
	0xed, 0xe0, 0x20, 0xf5, 0xf0, 0xe0, 0xe1, 0xf0,
	0xfb, 0xff, 0x20, 0xef, 0xeb, 0xfa, 0xea, 0xfb,
	0x20, 0xc8, 0xe3, 0xee, 0xf0, 0xe5, 0xe2, 0xfb,
}

func selftest(ctx *cli.Context) error {
	failed := 0
	for _, ce := range controlExamples {
		h, err := newHash(ce.bits)
		if err != nil {
			return err
		}
		h.Write(ce.msg)
		got := fmt.Sprintf("%x", h.Sum(nil))
		if got == ce.want {
			color.Green("%-26s OK", ce.name)
		} else {
			color.Red("%-26s FAILED\n  got  %s\n  want %s", ce.name, got, ce.want)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d control examples failed", failed, len(controlExamples))
	}
	return nil
}

func speed(ctx *cli.Context) error {
	buf := make([]byte, ctx.Int("mb")<<20)
	prng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	prng.Read(buf)

	for _, bits := range []int{256, 512} {
		h, err := newHash(bits)
		if err != nil {
			return err
		}
		var total int64
		start := time.Now()
		for time.Since(start) < 2*time.Second {
			h.Reset()
			h.Write(buf)
			h.Sum(nil)
			total += int64(len(buf))
		}
		elapsed := time.Since(start)
		fmt.Printf("streebog%d: %d MB in %s (~%.0f MB/s)\n",
			bits, total>>20, elapsed.Round(time.Millisecond),
			float64(total)/(1<<20)/elapsed.Seconds())
	}
	return nil
}
