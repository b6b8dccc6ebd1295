package wordlist

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/tui-hangman/internal/registry"
)

// DefaultPack is the pack played when none is chosen.
const DefaultPack = "default"

//go:embed packs/*.txt
var packFS embed.FS

// builtin lists the embedded packs in registration order.
var builtin = []struct {
	id    string
	title string
}{
	{id: DefaultPack, title: "Classic"},
	{id: "animals", title: "Animals"},
	{id: "gophers", title: "Gopher Words"},
}

func init() {
	for _, p := range builtin {
		registry.Register(p.id, p.title, embeddedLoader(p.id))
	}
}

func embeddedLoader(id string) registry.Loader {
	return func() ([]string, error) {
		data, err := packFS.ReadFile("packs/" + id + ".txt")
		if err != nil {
			return nil, fmt.Errorf("wordlist: embedded pack %q: %w", id, err)
		}
		return ParseString(string(data))
	}
}

// Resolve returns the words for a session: the file at path when set,
// otherwise the registered pack.
func Resolve(pack, path string) ([]string, error) {
	if path != "" {
		return LoadFile(path)
	}
	if pack == "" {
		pack = DefaultPack
	}
	return registry.Load(pack)
}
