package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/spf13/cobra"
)

var requestFile string

// dispatchCmd sends a single request read from a json file
var dispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "send a request to the DVRs",
	Long:  `send a request read from a json file, or stdin with -f -, to the DVRs`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		var r io.Reader = os.Stdin
		if requestFile != "-" {
			f, err := os.Open(requestFile)
			if err != nil {
				log.Fatalf("failed to open request: %v", err)
			}
			defer f.Close()
			r = f
		}

		var request dispatch.ShowRequest
		err := json.NewDecoder(r).Decode(&request)
		if err != nil {
			log.Fatalf("failed to read request: %v", err)
		}

		var success bool
		err = withApp(ctx, writer, func(a *app) error {
			result := a.manager.Dispatch(ctx, request)
			success = result.Success

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		})
		if err != nil {
			log.Fatal(err)
		}

		if !success {
			os.Exit(1)
		}
	},
}

func init() {
	dispatchCmd.Flags().StringVarP(&requestFile, "file", "f", "-", "request json file")
	rootCmd.AddCommand(dispatchCmd)
}
