package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint"
	"github.com/coinbase/ecpoint-go/pkg/ecpoint/logging"
)

// EnvPrefix is prepended to environment variables that override flags, e.g.
// ECPOINT_EXTENDED_CURVES=true.
const EnvPrefix = "ECPOINT"

const (
	keyConfig         = "config"
	keyExtendedCurves = "extended-curves"
	keyLogLevel       = "log-level"
)

// env carries the state shared by every subcommand once the root command has
// parsed its flags.
type env struct {
	v      *viper.Viper
	logger logging.Logger
	codec  *ecpoint.Codec
}

// NewRootCmd creates the ecpoint command tree. It is called once in main and
// once per test.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}

	root := &cobra.Command{
		Use:           "ecpoint",
		Short:         "Inspect X9.62 uncompressed EC points and TLS named curves",
		Version:       ecpoint.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "optional config file (yaml, json or toml)")
	flags.Bool(keyExtendedCurves, false, "enable secp224r1 and secp192r1")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	bindFlags(e.v, flags)

	root.AddCommand(
		curvesCmd(e),
		resolveCmd(e),
		decodeCmd(e),
		encodeCmd(e),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(f.Name, f)
	})
}

func (e *env) setup(cmd *cobra.Command) error {
	if path := e.v.GetString(keyConfig); path != "" {
		e.v.SetConfigFile(path)
		if err := e.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(e.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	e.logger = logging.New(slog.New(handler)).With("cmd", cmd.Name())

	cfg := ecpoint.Config{ExtendedCurves: e.v.GetBool(keyExtendedCurves)}
	e.codec = ecpoint.NewCodec(ecpoint.NewRegistry(cfg, ecpoint.WithLogger(e.logger)))
	return nil
}
