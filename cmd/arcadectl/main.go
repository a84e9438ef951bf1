package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"arcade/framework"
	"arcade/framework/hashloc"
	"arcade/framework/routetable"
	"arcade/internal/config"
	"arcade/internal/games"
	"arcade/internal/web"
	"github.com/spf13/cobra"
)

var errNotFound = errors.New("not found")

type tableFlags struct {
	profile string
	file    string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", games.DefaultProfile, "route profile to use")
	cmd.Flags().StringVar(&f.file, "file", "", "TOML route table, overrides --profile")
}

func (f *tableFlags) resolver() (*routetable.Resolver, error) {
	return web.LoadResolver(f.file, f.profile)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "arcadectl",
		Short:         "Inspect and check arcade route tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRoutesCommand(), newResolveCommand(), newCheckCommand())
	return root
}

func newRoutesCommand() *cobra.Command {
	flags := &tableFlags{}
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := flags.resolver()
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), resolver)
		},
	}
	flags.register(cmd)
	return cmd
}

func newResolveCommand() *cobra.Command {
	flags := &tableFlags{}
	cmd := &cobra.Command{
		Use:   "resolve <path|#fragment>",
		Short: "Print the view a path resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := flags.resolver()
			if err != nil {
				return err
			}

			path := hashloc.Path(args[0])
			result := resolver.Resolve(path)
			if !result.Matched() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tnot found\n", path)
				return fmt.Errorf("%s: %w", path, errNotFound)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, result.ViewID())
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newCheckCommand() *cobra.Command {
	cfg := config.Config{}
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a TOML route table against the registered game views",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := routetable.LoadFile(args[0])
			if err != nil {
				return err
			}
			if _, err := web.NewEngine(cfg, resolver); err != nil {
				return fmt.Errorf("check route table %q: %w", args[0], err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d routes ok\n", args[0], resolver.Len())
			return err
		},
	}
	cmd.Flags().StringVar(&cfg.Fallback, "fallback", string(framework.FallbackShowErrorView), "fallback policy the server will run with")
	cmd.Flags().StringVar(&cfg.DefaultPath, "default-path", "/", "default path for redirect-to-default")
	return cmd
}

func printTable(w io.Writer, resolver *routetable.Resolver) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tVIEW\tHREF")
	for _, entry := range resolver.Entries() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Path, entry.ViewID, hashloc.Href(entry.Path))
	}
	return tw.Flush()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "arcadectl: %v\n", err)
		os.Exit(1)
	}
}
