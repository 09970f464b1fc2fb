package ports

type GitService interface {
	StagedDiff() (string, error)
	WorkingTreeDiff() (string, error)
	HasStagedChanges() bool
	RepoName() (string, error)
}
