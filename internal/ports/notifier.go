package ports

// SystemNotifier shows a desktop notification. Implementations must not block
// beyond launching the platform helper.
type SystemNotifier interface {
	Notify(title, body string) error
}
