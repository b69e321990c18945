package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabnav/internal/adapters/memdom"
	"tabnav/internal/domain"
	"tabnav/internal/resolver"
)

var resolveSource string

var resolveCmd = &cobra.Command{
	Use:   "resolve <link>",
	Short: "Resolve a raw link target to a canonical vault path",
	Long: `Resolve runs a raw wiki-link target through the same heuristics the
click router uses, then applies extension normalization against the
vault listing. Relative (../) targets are resolved against --source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(vault, activeFile(resolveSource))
		el := memdom.NewNode(domain.ClassInternalLink).SetAttr(domain.AttrHref, args[0])

		raw, ok := res.Resolve(domain.SourceInternalLink, el)
		if !ok {
			return fmt.Errorf("unresolved: %s (the host would handle this link itself)", args[0])
		}
		fmt.Println(res.Normalize(raw))
		return nil
	},
}

// activeFile adapts a fixed path to the resolver's active-file source.
type activeFile string

func (a activeFile) ActiveFile() (string, bool) {
	return string(a), a != ""
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveSource, "source", "s", "", "vault-relative path of the note containing the link")
	rootCmd.AddCommand(resolveCmd)
}
