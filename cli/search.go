package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/gossip/core/feed"
	"github.com/goto/gossip/core/validator"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func searchCommand(cfg *Config) *cobra.Command {
	var lang, identity, output string
	var page int
	cmd := &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{},
		Short:   "search notes and actors",
		Annotations: map[string]string{
			"group": "core",
		},
		Args: cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			$ gossip search "hello world"
			$ gossip search "note-local:true note-types:media" --page 2
			$ gossip search "note-from:subscribed" --actor alice
			$ gossip search "actor-types:bot" -o json
		`),

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.ValidateOneOf(output, "table", "json"); err != nil {
				return err
			}
			spinner := printer.Spin("")
			defer spinner.Stop()

			logger := initLogger(cfg.LogLevel)
			svcs, err := initServices(logger, cfg)
			if err != nil {
				return err
			}
			defer svcs.pgClient.Close()

			ctx := cmd.Context()
			q := feed.Query{
				Text:     strings.TrimSpace(args[0]),
				Page:     page,
				Language: lang,
			}
			if identity != "" {
				a, err := svcs.actor.Identify(ctx, identity)
				if err != nil {
					return fmt.Errorf("identify actor %q: %w", identity, err)
				}
				q.Actor = &a
			}

			res, err := svcs.feed.Search(ctx, q)
			if err != nil {
				return err
			}

			spinner.Stop()
			out := cmd.OutOrStdout()
			if output == "json" {
				return printJSON(out, res)
			}
			printSearchResult(out, res)
			fmt.Fprintln(out, term.Cyanf("To view all the data in JSON format, use flag `-o json`"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (starts from 1)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Preferred language of the notes, e.g. en or pt-BR")
	cmd.Flags().StringVarP(&identity, "actor", "a", "", "Nickname or id of the actor searching")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")
	return cmd
}

func printSearchResult(w io.Writer, res feed.SearchResult) {
	fmt.Fprintln(w, term.Greenf("Notes (%d)", len(res.Notes.Records)))
	notes := [][]string{{"ID", "ACTOR", "LOCAL", "CREATED", "CONTENT"}}
	for _, n := range res.Notes.Records {
		content := ""
		if n.Content != nil {
			content = ellipsis(*n.Content, 60)
		}
		notes = append(notes, []string{
			strconv.FormatInt(n.ID, 10),
			strconv.FormatInt(n.ActorID, 10),
			strconv.FormatBool(n.IsLocal),
			n.Created.Format("2006-01-02 15:04"),
			term.Bluef(content),
		})
	}
	printer.Table(w, notes)

	fmt.Fprintln(w)
	fmt.Fprintln(w, term.Greenf("Actors (%d)", len(res.Actors.Records)))
	actors := [][]string{{"ID", "NICKNAME", "TYPE", "LOCAL", "NAME"}}
	for _, a := range res.Actors.Records {
		actors = append(actors, []string{
			strconv.FormatInt(a.ID, 10),
			term.Bluef(a.Nickname),
			a.Kind.String(),
			strconv.FormatBool(a.IsLocal),
			a.FullName,
		})
	}
	printer.Table(w, actors)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(v)
}

func ellipsis(s string, max int) string {
	r := []rune(strings.Join(strings.Fields(s), " "))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-1]) + "…"
}
