package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/commitcoach/CommitCoach/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct {
}

func NewGitService() *GitService {
	return &GitService{}
}

// HasStagedChanges verifica si hay cambios en el área de staging
func (s *GitService) HasStagedChanges() bool {
	cmd := exec.Command("git", "diff", "--cached", "--quiet")
	err := cmd.Run()

	// Exit status 1 significa que hay cambios staged
	return err != nil && cmd.ProcessState.ExitCode() == 1
}

func (s *GitService) StagedDiff() (string, error) {
	cmd := exec.Command("git", "diff", "--cached")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al obtener el diff staged: %w", err)
	}
	return string(output), nil
}

func (s *GitService) WorkingTreeDiff() (string, error) {
	cmd := exec.Command("git", "diff")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al obtener el diff del working tree: %w", err)
	}
	return string(output), nil
}

// RepoName devuelve el nombre del directorio raíz del repo.
func (s *GitService) RepoName() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al obtener la raíz del repo: %w", err)
	}
	return filepath.Base(strings.TrimSpace(string(output))), nil
}
