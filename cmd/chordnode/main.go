// Command chordnode boots a single Chord ring participant: either as the
// creator of a brand new ring, or as a node joining an existing one
// through a known peer.
package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	chord "github.com/sixaxis-labs/chordring"
	"github.com/sixaxis-labs/chordring/chordpb"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:   "chordnode",
		Short: "Run a Chord DHT ring node",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().String("host", "127.0.0.1", "this node's listen address")
	root.PersistentFlags().Int("port", 6000, "this node's listen port")
	root.PersistentFlags().Int("key-size", 160, "bit-width of the identifier space (m)")
	root.PersistentFlags().Int("successor-list-size", 8, "initial capacity of the fault-tolerance successor list (its length is capped at key-size)")
	root.PersistentFlags().Duration("timeout", 500*time.Millisecond, "per-RPC deadline")
	root.PersistentFlags().Duration("stabilize-interval", time.Second, "stabilize task period")
	root.PersistentFlags().Duration("fix-fingers-interval", 3*time.Second, "fixFingers task period")
	root.PersistentFlags().Duration("check-predecessor-interval", time.Second, "checkPredecessor task period")
	root.PersistentFlags().Duration("debug-interval", 10*time.Second, "debug-dump task period")
	root.PersistentFlags().Bool("debug", false, "enable verbose logging")
	root.PersistentFlags().String("migrator", "noop", "data-migration hook: \"noop\" or \"wal\"")
	root.PersistentFlags().String("wal-path", "chord.wal", "append-only log path used by --migrator=wal")
	viper.BindPFlags(root.PersistentFlags())

	root.AddCommand(createCmd())
	root.AddCommand(joinCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a brand new Chord ring and become its sole member",
		RunE: func(cmd *cobra.Command, args []string) error {
			loadConfigFile()
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			n, err := chord.NewLoneNode(cfg)
			if err != nil {
				return err
			}
			waitForSignal(n)
			return nil
		},
	}
}

func joinCmd() *cobra.Command {
	var knownHost string
	var knownPort int

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join an existing Chord ring through a known peer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if knownHost == "" {
				return fmt.Errorf("chordnode join: --known-host is required")
			}
			loadConfigFile()
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			known := &chordpb.Node{Host: knownHost, Port: uint32(knownPort)}
			n, err := chord.NewJoiningNode(cfg, known)
			if err != nil {
				return err
			}
			waitForSignal(n)
			return nil
		},
	}
	cmd.Flags().StringVar(&knownHost, "known-host", "", "address of a node already in the ring")
	cmd.Flags().IntVar(&knownPort, "known-port", 0, "port of a node already in the ring")
	return cmd
}

func loadConfigFile() {
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("chordnode: could not read config file %s: %v\n", cfgFile, err)
	}
}

func buildConfig() (*chord.Config, error) {
	cfg := chord.DefaultConfig()
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.KeySize = viper.GetInt("key-size")
	cfg.SuccessorListSize = viper.GetInt("successor-list-size")
	cfg.Timeout = viper.GetDuration("timeout")
	cfg.StabilizeInterval = viper.GetDuration("stabilize-interval")
	cfg.FixFingerInterval = viper.GetDuration("fix-fingers-interval")
	cfg.CheckPredecessorInterval = viper.GetDuration("check-predecessor-interval")
	cfg.DebugInterval = viper.GetDuration("debug-interval")
	cfg.Debug = viper.GetBool("debug")

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	switch viper.GetString("migrator") {
	case "", "noop":
		// cfg.Migrator already defaults to noopMigrator{}
	case "wal":
		m, err := chord.NewWALMigrator(viper.GetString("wal-path"))
		if err != nil {
			return nil, fmt.Errorf("chordnode: opening wal migrator: %w", err)
		}
		cfg.Migrator = m
	default:
		return nil, fmt.Errorf("chordnode: unknown --migrator %q (want \"noop\" or \"wal\")", viper.GetString("migrator"))
	}

	return cfg, nil
}

// waitForSignal blocks forever: Node itself installs OS signal handlers
// that perform a graceful Shutdown and exit the process (see node.go).
func waitForSignal(n *chord.Node) {
	select {}
}
