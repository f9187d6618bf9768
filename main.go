package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rm-hull/png-transform/cmd"
	"github.com/rm-hull/png-transform/internal"
	"github.com/spf13/cobra"
)

func main() {
	var outputPath string
	var angle float64
	var port int
	var debug bool
	var maxBody int64

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	defaultOutput := os.Getenv("PNG_TRANSFORM_OUTPUT")
	if defaultOutput == "" {
		defaultOutput = "modified.png"
	}

	rootCmd := &cobra.Command{
		Use:           "png-transform",
		Long:          `Rotate, flip or greyscale a PNG image`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Interactive(c.InOrStdin(), c.OutOrStdout(), outputPath)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", defaultOutput, "Path to write the transformed PNG to")

	transformCmd := func(op internal.Operation, use, short string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return cmd.Transform(args[0], outputPath, op, angle)
			},
		}
	}

	rotateCmd := transformCmd(internal.Rotate, "rotate <input> [--angle <degrees>]", "Rotate the image about its centre")
	rotateCmd.Flags().Float64Var(&angle, "angle", 0, "Rotation angle in degrees")

	rootCmd.AddCommand(
		rotateCmd,
		transformCmd(internal.FlipVertical, "flip-vertical <input>", "Flip the image top to bottom"),
		transformCmd(internal.FlipHorizontal, "flip-horizontal <input>", "Flip the image left to right"),
		transformCmd(internal.Grayscale, "grayscale <input>", "Convert the image to greyscale"),
	)

	apiServerCmd := &cobra.Command{
		Use:   "api-server [--port <port>] [--debug] [--max-body <bytes>]",
		Short: "Start HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.ApiServer(port, debug, maxBody)
		},
	}

	apiServerCmd.Flags().IntVar(&port, "port", 8080, "Port to run HTTP server on")
	apiServerCmd.Flags().BoolVar(&debug, "debug", false, "Enable debugging (pprof) - WARING: do not enable in production")
	apiServerCmd.Flags().Int64Var(&maxBody, "max-body", cmd.DefaultMaxBody, "Maximum accepted request body in bytes")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), internal.Version())
		},
	}

	rootCmd.AddCommand(apiServerCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
