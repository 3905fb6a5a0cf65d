package actions

import (
	"context"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

// Head describes the checked-out commit of a repository.
type Head struct {
	Branch string
	Hash   string
	Clean  bool
}

func (h Head) String() string {
	state := "clean"
	if !h.Clean {
		state = "dirty"
	}
	return fmt.Sprintf("%s@%s (%s)", h.Branch, h.Hash, state)
}

// GitHead inspects the repository at path and resolves with its Head.
func GitHead(path string) button.Action {
	return Func(func(ctx context.Context) (any, error) {
		return readHead(ctx, path)
	})
}

func readHead(ctx context.Context, path string) (Head, error) {
	if err := ctx.Err(); err != nil {
		return Head{}, err
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Head{}, fmt.Errorf("open repository %s: %w", path, err)
	}

	ref, err := repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("resolve HEAD in %s: %w", path, err)
	}

	head := Head{
		Branch: ref.Name().Short(),
		Hash:   ref.Hash().String()[:7],
		Clean:  true,
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return head, nil
	}
	status, err := worktree.Status()
	if err != nil {
		return Head{}, fmt.Errorf("worktree status in %s: %w", path, err)
	}
	head.Clean = status.IsClean()
	return head, nil
}
