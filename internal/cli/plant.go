package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/ui"
)

func plantCommand(_ *env) *cobra.Command {
	var (
		file  string
		width int
	)
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Show a plant's details, rendering its HTML description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := model.SamplePlant()
			if file != "" {
				var err error
				if p, err = loadPlant(file); err != nil {
					return err
				}
			}
			out, err := ui.PlantDetail(p, width)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file holding one plant")
	cmd.Flags().IntVarP(&width, "width", "w", 72, "wrap width")
	return cmd
}

func loadPlant(path string) (model.Plant, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Plant{}, fmt.Errorf("read plant: %w", err)
	}
	var p model.Plant
	if err := json.Unmarshal(b, &p); err != nil {
		return model.Plant{}, fmt.Errorf("parse plant: %w", err)
	}
	if p.Name == "" {
		return model.Plant{}, errors.New("parse plant: missing name")
	}
	return p, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
