package ports

// BranchResolver looks up the checked-out git branch of a directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=branch.go -destination=mocks/mock_branch.go -package=mocks
type BranchResolver interface {
	// Branch returns the branch name, a short commit hash when detached,
	// or "" outside a repository.
	Branch(dir string) string
}
