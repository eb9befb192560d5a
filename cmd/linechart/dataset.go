package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/linechart"
	"github.com/raykavin/linechart/internal/config"
	"github.com/raykavin/linechart/pkg/core"
	"github.com/raykavin/linechart/pkg/dataset"
	"github.com/raykavin/linechart/pkg/storage"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func buildDatasetCmd() *cobra.Command {
	var database string
	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage named datasets",
	}
	datasetCmd.PersistentFlags().StringVar(&database, "db", defaultDatabase, "Dataset database file")

	openStore := func() (*storage.Store, error) {
		return storage.FromFile(database)
	}

	var bucket string
	saveCmd := &cobra.Command{
		Use:   "save name input",
		Short: "Load an input and store it under name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			csvOpts := dataset.CSVOptions{Bucket: bucket}
			source, err := dataset.Load(cmd.Context(), args[1], dataset.LoadOptions{
				CSV:   csvOpts,
				Fetch: dataset.FetchOptions{CSV: csvOpts, Log: linechart.DefaultLog},
			})
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(args[0], source); err != nil {
				return err
			}
			linechart.DefaultLog.WithFields(map[string]any{
				"dataset": args[0],
				"series":  len(source),
			}).Info("dataset saved")
			return nil
		},
	}
	saveCmd.Flags().StringVar(&bucket, "bucket", "", "Group CSV dates into spans (e.g. 1h, 1d, 1w)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			datasets, err := store.List()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Series", "Points", "Saved"})
			for _, d := range datasets {
				points := lo.SumBy(d.Series, func(s core.Series) int { return s.Length() })
				table.Append([]string{
					d.Name,
					strconv.Itoa(len(d.Series)),
					humanize.Comma(int64(points)),
					humanize.Time(d.SavedAt),
				})
			}
			table.Render()
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete name",
		Short: "Delete a stored dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}

	datasetCmd.AddCommand(saveCmd, listCmd, deleteCmd)
	return datasetCmd
}

func buildConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Chart configuration files",
	}

	initCmd := &cobra.Command{
		Use:   "init path",
		Short: "Write a config file with the default chart settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			linechart.DefaultLog.WithField("path", args[0]).Info("default configuration file created")
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	return configCmd
}
