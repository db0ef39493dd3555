package cli

import (
	"io"
	"log"
	"os"
	"strings"

	"bsp-inspector/bsp"
	"bsp-inspector/bsp/bsource"
	"bsp-inspector/ds"
	"bsp-inspector/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

const DefaultPath = "pasha.bsp"

type (
	Args struct {
		Show        *ShowCmd        `arg:"subcommand:show" help:"print the header of a BSP file"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"write the header of a BSP file as JSON"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse the lump directory"`
		Verbose     bool            `arg:"-v" help:"log the decoded struct"`
	}
	ShowCmd struct {
		Path     string `arg:"positional" default:"pasha.bsp" help:"path to the map" placeholder:"map.bsp"`
		NonEmpty bool   `arg:"--non-empty" help:"hide lumps with zero offset and length"`
	}
	InteractiveCmd struct {
		Path string `arg:"positional" default:"pasha.bsp" help:"path to the map" placeholder:"map.bsp"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"map.bsp"`
		To    string `arg:"required" help:"path to destination file" placeholder:"file.json"`
		Force bool   `help:"overwrite the destination file"`
		Debug bool   `help:"dump the raw decoded struct"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Peek into the header of a BSP map.\n",
			"Prints the ident, version, lump directory and map revision",
			"of a BSP file, optionally gzip or zstd compressed.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func LoadFile(path string) (*bsp.Struct, error) {
	headerBytes, err := bsource.ReadHeaderBytes(path)
	if err != nil {
		return nil, err
	}
	decodedFile, err := bsp.ToStructuredFile(headerBytes)
	if err != nil {
		return nil, errors.Wrapf(err, `LoadFile error decoding "%s"`, path)
	}
	return decodedFile, nil
}

func StartShowing(w io.Writer, path string, nonEmpty bool, verbose bool) error {
	decodedFile, err := LoadFile(path)
	if err != nil {
		return err
	}
	if verbose {
		log.Println(ds.DumpJSON(decodedFile))
	}
	_, err = io.WriteString(w, bsp.Describe(*decodedFile, nonEmpty))
	return err
}

func StartInteractive(path string, verbose bool) error {
	decodedFile, err := LoadFile(path)
	if err != nil {
		return err
	}
	if verbose {
		log.Println(ds.DumpJSON(decodedFile))
	}
	return ui.Start(path, *decodedFile)
}

func StartConverting(from string, to string, force bool, debug bool) error {
	if !CheckExistence(from) {
		return errors.New("source file does not exist")
	}
	if CheckExistence(to) && !force {
		msg := "destination file existed, please type the command again with --force to allow overwriting"
		return errors.New(msg)
	}
	headerBytes, err := bsource.ReadHeaderBytes(from)
	if err != nil {
		return err
	}
	decodedBytes, err := bsp.DecodeBSP(headerBytes, debug)
	if err != nil {
		return errors.Wrap(err, "StartConverting error decoding BSP header to JSON")
	}
	if err := os.WriteFile(to, decodedBytes, 0644); err != nil {
		return errors.Wrapf(err, "StartConverting error writing to file at: %s", to)
	}
	println("Done converting. Please check your result file at: " + to)
	return nil
}

func Run(args Args) error {
	switch {
	case args.Show != nil:
		return StartShowing(os.Stdout, args.Show.Path, args.Show.NonEmpty, args.Verbose)
	case args.Convert != nil:
		return StartConverting(
			args.Convert.From,
			args.Convert.To,
			args.Convert.Force,
			args.Convert.Debug,
		)
	case args.Interactive != nil:
		return StartInteractive(args.Interactive.Path, args.Verbose)
	case args.Show == nil && args.Convert == nil && args.Interactive == nil:
		return StartShowing(os.Stdout, DefaultPath, false, args.Verbose)
	}
	return ds.ErrUnreachableCode{Caller: "cli.Run"}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if err := Run(args); err != nil {
		log.Fatal(err)
	}
}
