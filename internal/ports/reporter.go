package ports

// Reporter prints human-readable progress lines.
// Info lines are plain; Success lines carry a check mark.
type Reporter interface {
	Info(msg string)
	Success(msg string)
}
