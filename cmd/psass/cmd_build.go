package main

import "fmt"

import "github.com/spf13/cobra"

import "github.com/alexcrichton/go-sass/build"

var (
	flagJobs   int
	flagGzip   bool
	flagDigest bool
)

var buildCmd = &cobra.Command{
	Use:   "build SRC DEST",
	Short: "Compile every Sass file under SRC into DEST",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCompiler(cmd)
		if err != nil {
			return err
		}
		outputs, err := build.Dir(c, args[0], args[1], build.Config{
			Workers: flagJobs,
			Gzip:    flagGzip,
			Digest:  flagDigest,
		})
		for _, o := range outputs {
			for _, f := range o.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		}
		return err
	},
}

func init() {
	buildCmd.Flags().IntVarP(&flagJobs, "jobs", "j", 0, "parallel compiles (default number of CPUs)")
	buildCmd.Flags().BoolVar(&flagGzip, "gzip", false, "also write .gz copies")
	buildCmd.Flags().BoolVar(&flagDigest, "digest", false, "also write copies named after their md5 digest")
}
