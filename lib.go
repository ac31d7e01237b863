package thunk

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/thunk/statik"
)

//go:generate statik -src=examples -f

// Example is a bundled sample program and the result it prints.
type Example struct {
	Name   string
	Source string
	Want   string
}

// LoadExamples returns the bundled examples sorted by name.
func LoadExamples() ([]Example, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var examples []Example
	for _, fi := range fis {
		if path.Ext(fi.Name()) != ".thk" {
			continue
		}
		name := strings.TrimSuffix(fi.Name(), ".thk")
		src, err := readFile(statikFS, path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		want, err := readFile(statikFS, path.Join("/", name+".out"))
		if err != nil {
			return nil, err
		}
		examples = append(examples, Example{
			Name:   name,
			Source: src,
			Want:   want,
		})
	}
	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Name < examples[j].Name
	})
	return examples, nil
}

// FindExample returns the bundled example called name.
func FindExample(name string) (*Example, error) {
	examples, err := LoadExamples()
	if err != nil {
		return nil, err
	}
	for i := range examples {
		if examples[i].Name == name {
			return &examples[i], nil
		}
	}
	return nil, fmt.Errorf("no example named %q", name)
}

func readFile(hfs http.FileSystem, name string) (string, error) {
	f, err := hfs.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
