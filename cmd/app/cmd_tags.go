package main

import (
	"github.com/spf13/cobra"

	"datewise/internal/services"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Work with the place tag vocabulary",
}

var (
	inferTypes    []string
	inferSnippets []string
	inferPrice    int
)

var tagsInferCmd = &cobra.Command{
	Use:     "infer",
	Short:   "Infer tags from place types, a price level and review snippets",
	Example: `  datewise tags infer --type cafe --price 1 --snippet "perfect for date night"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := services.TaggingInput{
			Types:    inferTypes,
			Snippets: inferSnippets,
		}
		if cmd.Flags().Changed("price") {
			input.PriceLevel = &inferPrice
		}

		tags, err := services.NewTagService().InferTags(input)
		if err != nil {
			return err
		}
		return printJSON(tags)
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every known tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(services.NewTagService().ListTags())
	},
}

func init() {
	tagsInferCmd.Flags().StringArrayVar(&inferTypes, "type", nil, "place type, repeatable")
	tagsInferCmd.Flags().StringArrayVar(&inferSnippets, "snippet", nil, "review snippet, repeatable")
	tagsInferCmd.Flags().IntVar(&inferPrice, "price", 0, "price level from 0 to 4")

	tagsCmd.AddCommand(tagsInferCmd, tagsListCmd)
	rootCmd.AddCommand(tagsCmd)
}
