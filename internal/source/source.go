// Package source resolves the text arguments of the linebreak command:
// literal text, standard input, files, and git commit messages.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Prefixes that select a source.
const (
	StdinSpec  = "-"
	GitPrefix  = "git:"
	FilePrefix = "@"
)

// ErrNotFound is returned when a file or revision does not exist.
var ErrNotFound = errors.New("not found")

// Resolver turns source specs into text.
type Resolver struct {
	// FS is used for @path specs.
	FS billy.Filesystem
	// Stdin is read for the "-" spec.
	Stdin io.Reader
	// GitDir is where the repository search for git: specs starts.
	GitDir string
	// Repo, when set, is used instead of opening GitDir.
	Repo *git.Repository
}

// Resolve returns the text named by spec. "-" reads standard input,
// "@path" reads a file, "git:rev" is the message of the commit at rev and
// "git:rev:path" is a file in that commit's tree. An empty rev means HEAD.
// Anything else is returned as is.
func (r *Resolver) Resolve(spec string) (string, error) {
	switch {
	case spec == StdinSpec:
		return r.stdin()
	case strings.HasPrefix(spec, GitPrefix):
		rev, path, ok := strings.Cut(strings.TrimPrefix(spec, GitPrefix), ":")
		if ok {
			return r.treeFile(rev, path)
		}
		return r.commitMessage(rev)
	case isFile(spec):
		return r.file(strings.TrimPrefix(spec, FilePrefix))
	}
	return spec, nil
}

// IsLiteral reports whether spec is plain text rather than a source.
func IsLiteral(spec string) bool {
	return spec != StdinSpec && !strings.HasPrefix(spec, GitPrefix) && !isFile(spec)
}

func isFile(spec string) bool {
	return strings.HasPrefix(spec, FilePrefix) && len(spec) > len(FilePrefix)
}

// Join resolves each spec and joins the results with a blank line, so
// each becomes its own paragraph. Literal words are joined with a space.
func (r *Resolver) Join(specs []string) (string, error) {
	var b strings.Builder
	literal := false
	for i, spec := range specs {
		text, err := r.Resolve(spec)
		if err != nil {
			return "", err
		}
		lit := IsLiteral(spec)
		if i > 0 {
			if literal && lit {
				b.WriteByte(' ')
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(strings.TrimRight(text, "\n"))
		literal = lit
	}
	return b.String(), nil
}

func (r *Resolver) stdin() (string, error) {
	if r.Stdin == nil {
		return "", fmt.Errorf("read stdin: %w", ErrNotFound)
	}
	data, err := io.ReadAll(r.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (r *Resolver) file(path string) (string, error) {
	if r.FS == nil {
		return "", fmt.Errorf("read %s: no filesystem", path)
	}
	data, err := util.ReadFile(r.FS, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("read %s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func (r *Resolver) commitMessage(rev string) (string, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return "", err
	}
	return commit.Message, nil
}

func (r *Resolver) treeFile(rev, path string) (string, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return "", err
	}
	f, err := commit.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return "", fmt.Errorf("%s:%s: %w", rev, path, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("%s:%s: %w", rev, path, err)
	}
	contents, err := f.Contents()
	if err != nil {
		return "", fmt.Errorf("%s:%s: %w", rev, path, err)
	}
	return contents, nil
}

// commit returns the commit rev names; an empty rev means HEAD.
func (r *Resolver) commit(rev string) (*object.Commit, error) {
	if rev == "" {
		rev = "HEAD"
	}
	repo, err := r.repo()
	if err != nil {
		return nil, err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rev, ErrNotFound)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", rev, err)
	}
	return commit, nil
}

func (r *Resolver) repo() (*git.Repository, error) {
	if r.Repo != nil {
		return r.Repo, nil
	}
	dir := r.GitDir
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}
	r.Repo = repo
	return repo, nil
}
