package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tamagotchi/internal/config"
	"tamagotchi/internal/game"
	"tamagotchi/internal/storage"
	"tamagotchi/internal/ui"
)

const Version = "v1.0.0"

// app carries what every command needs once flags are parsed
type app struct {
	configPath string
	slot       string
	cfg        config.Config
	logFile    *os.File
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if cerr := a.teardown(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tamagotchi",
		Short:         "A virtual pet that lives in your terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&a.slot, "slot", "", "Save slot to use (overrides the config)")

	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newAchievementsCmd(a))
	rootCmd.AddCommand(newSlotsCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.slot != "" {
		cfg.Slot = a.slot
	}
	a.cfg = cfg

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tamagotchi")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
	}
	return nil
}

// teardown closes the log file; it runs even when a command failed
func (a *app) teardown() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *app) openStore() (storage.Store, error) {
	return storage.Open(a.cfg.Backend, a.cfg.SaveDir)
}

// loadOrCreate returns the saved session of the slot, or a new pet when the
// slot is empty
func (a *app) loadOrCreate(store storage.Store) (*game.Session, error) {
	s, err := game.Load(store, a.cfg.Slot)
	if errors.Is(err, storage.ErrNoSave) {
		log.Printf("Slot %s is empty, creating a new pet", a.cfg.Slot)
		return game.New(a.cfg.PetName), nil
	}
	return s, err
}

func (a *app) play() error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	s, err := a.loadOrCreate(store)
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewModel(s, store, a.cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new [name]",
		Short: "Adopt a new pet, replacing the one in the slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.PetName
			if len(args) == 1 {
				name = args[0]
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			s := game.New(name)
			if err := s.Save(store, a.cfg.Slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Adopted %s into slot %s\n", s.Pet.Name, a.cfg.Slot)
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the pet in the slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			s, err := game.Load(store, a.cfg.Slot)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.StatusCard(s))
			return nil
		},
	}
}

func newAchievementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements for the pet in the slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			s, err := game.Load(store, a.cfg.Slot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d unlocked\n\n%s\n",
				s.Pet.Name, s.Achievements.Unlocked(), len(s.Achievements), ui.AchievementList(s.Achievements))
			return nil
		},
	}
}

func newSlotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			slots, err := store.Slots()
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saves yet")
				return nil
			}

			history, keepsHistory := store.(interface{ History(string) (int, error) })
			for _, slot := range slots {
				line := slot
				if keepsHistory {
					n, err := history.History(slot)
					if err != nil {
						return err
					}
					line = fmt.Sprintf("%s (%d saves)", slot, n)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", a.configPath)
			}
			if err := config.Save(a.configPath, a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
