// Command arkdump loads ARK save files and writes their ASV-compatible
// JSON export (spec §1 "CLI, logging, packaging" — an out-of-scope
// external collaborator thinly wrapping the library).
package main

import (
	"fmt"
	"os"

	"arksave/ark"
	"arksave/ark/asa"
	"arksave/config"
	"arksave/export"
	"arksave/memory"
	"arksave/models"
	"arksave/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	settingsPath string
	outputName   string
)

func main() {
	root := &cobra.Command{
		Use:   "arkdump",
		Short: "Decode ARK save files into ASV-compatible JSON",
	}
	root.PersistentFlags().StringVar(&settingsPath, "config", "arkdump.toml", "path to a TOML settings file")
	root.PersistentFlags().StringVar(&outputName, "out", "export", "output file stem (without extension)")

	root.AddCommand(profileCmd(), tribeCmd(), worldCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() logrus.FieldLogger {
	l := logrus.New()
	if config.DEBUG {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func loadSettings() config.Settings {
	s, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arkdump: loading %s: %v\n", settingsPath, err)
		os.Exit(1)
	}
	return s
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [file]",
		Short: "Decode a .arkprofile file and export the player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			obj, _, err := ark.DecodeASESingleObject(memory.NewReader(data), newLogger())
			if err != nil {
				return err
			}
			player := models.NewPlayer(obj)
			result := export.ExportAll(export.Input{Players: []*models.Player{player}, ObjectCount: 1})
			return writeResult(result)
		},
	}
}

func tribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tribe [file]",
		Short: "Decode a .arktribe file and export the tribe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			obj, _, err := ark.DecodeASESingleObject(memory.NewReader(data), newLogger())
			if err != nil {
				return err
			}
			tribe := models.NewTribe(obj)
			result := export.ExportAll(export.Input{Tribes: []*models.Tribe{tribe}, ObjectCount: 1})
			return writeResult(result)
		},
	}
}

func worldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "world [file]",
		Short: "Decode a .ark world save (ASE binary or ASA SQLite) and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			logger := newLogger()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			format, _, _ := ark.Detect(data)

			var objects []*ark.GameObject
			var ctx *ark.Context
			if format == ark.FormatASA {
				objects, ctx, err = asa.Load(args[0], logger)
			} else {
				objects, ctx, err = ark.DecodeASEWorld(memory.NewReader(data), logger)
			}
			if err != nil {
				return err
			}
			if settings.MaxObjects > 0 && len(objects) > settings.MaxObjects {
				objects = objects[:settings.MaxObjects]
			}

			container := ark.NewContainer(objects)
			result := buildWorldExport(container, ctx)
			return writeResult(result)
		},
	}
}

func buildWorldExport(c *ark.Container, ctx *ark.Context) export.Result {
	var tamed []*models.TamedCreature
	for _, o := range c.Tamed() {
		status, _ := o.StatusComponent()
		tamed = append(tamed, models.NewTamed(o, status))
	}
	var wild []*models.WildCreature
	for _, o := range c.Wild() {
		status, _ := o.StatusComponent()
		wild = append(wild, models.NewWild(o, status))
	}
	var structures []*models.Structure
	for _, o := range c.Structures() {
		structures = append(structures, models.NewStructure(o, ctx.GameTime))
	}

	return export.ExportAll(export.Input{
		Tamed:           tamed,
		Wild:            wild,
		Structures:      structures,
		ObjectCount:     len(c.All()),
		ParseErrorCount: len(ctx.Errors),
	})
}

func writeResult(result export.Result) error {
	if err := utils.SaveToFile(".", outputName, "json", result); err != nil {
		return err
	}
	data, err := export.MarshalJSON(result)
	if err != nil {
		return err
	}
	return os.WriteFile(outputName+".json", data, 0644)
}
