package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "master" // Replaced by linker, see Makefile
var log = logrus.New()

var (
	inputFile      string
	outputFile     string
	encodingFile   string
	frequencyBased bool
	prettyEncoding bool
	symbolWidth    int
	verbose        bool
)

func main() {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of hajiman",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			println(version)
		},
	}

	var cmdEncode = &cobra.Command{
		Use:   "encode [data]",
		Short: "Encode bytes as honey-water token text",
		Long: "Encode bytes as honey-water token text.\n\n" +
			"Unless --encoding-file is given, the encoding is built on the fly:\n" +
			"from the input's own byte frequencies with --frequency-based, or\n" +
			"assuming uniform byte probabilities otherwise. The encoding is\n" +
			"emitted as a JSON header before the token text so the output is\n" +
			"self-describing for decode.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runEncode(args); err != nil {
				log.Fatal(err)
			}
		},
	}

	var cmdDecode = &cobra.Command{
		Use:   "decode [data]",
		Short: "Decode honey-water token text back to bytes",
		Long: "Decode honey-water token text back to bytes.\n\n" +
			"The encoding is taken from --encoding-file when given; otherwise a\n" +
			"JSON header is looked for at the start of the input, falling back\n" +
			"to the uniform-probability encoding.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runDecode(args); err != nil {
				log.Fatal(err)
			}
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "hajiman",
		Short: "Hajiman ciphers bytes into honey-water tokens and back",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputFile, "input-file", "i", "", "read input from file instead of stdin or the data argument")
	pf.StringVarP(&outputFile, "output-file", "o", "", "write output to file instead of stdout")
	pf.StringVarP(&encodingFile, "encoding-file", "e", "", "read the encoding from a JSON file")
	pf.BoolVarP(&frequencyBased, "frequency-based", "f", false, "build the encoding from the input's byte frequencies")
	pf.BoolVarP(&prettyEncoding, "pretty-encoding", "p", false, "emit the encoding header as indented JSON")
	pf.IntVarP(&symbolWidth, "width", "w", 8, "symbol width in bits (4, 6 or 8)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(cmdEncode, cmdDecode, cmdVersion)
	rootCmd.Execute()
}
