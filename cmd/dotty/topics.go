package dotty

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/dotty/pkg/cobrax/topics"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// initTopics installs the topic-aware help command on root.
func initTopics(root *cobra.Command) {
	log := logging.GetLogger("cli")

	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(root, sub, opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
