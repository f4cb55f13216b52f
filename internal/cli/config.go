package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/store"
	"github.com/idilsaglam/notes/internal/ui"
)

func newConfigCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := s.cfg
			t := ui.Current()
			row := func(k, v string) string { return ui.C(t.Muted, k+" ") + v }

			file := cfg.File
			if file == "" {
				file = "(none)"
			}
			lines := []string{
				ui.C(t.Title, "Configuration"),
				"",
				row("config file   ", file),
				row("mode          ", string(cfg.Mode())),
			}
			if cfg.Mode() == store.ModeRemote {
				lines = append(lines,
					row("api.base_url  ", cfg.API.BaseURL),
					row("api.timeout   ", cfg.API.Timeout.String()),
				)
			} else {
				lines = append(lines,
					row("storage       ", cfg.Storage.Backend),
					row("storage.dir   ", cfg.Storage.Dir),
				)
			}
			lines = append(lines,
				row("log           ", cfg.Log.Level+" "+cfg.Log.Format+" "+cfg.Log.File),
				row("serve.addr    ", cfg.Serve.Addr),
				row("ui.theme      ", t.Name),
			)
			ui.Panel(s.stdout, lines)
			return nil
		},
	}
}
