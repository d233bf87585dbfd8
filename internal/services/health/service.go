package health

// Service encapsulates health-related checks.
type Service struct {
	// DBPing is optional; when nil the database check is skipped.
	DBPing func() error
}

// NewService constructs a new health service.
func NewService(dbPing func() error) *Service {
	return &Service{DBPing: dbPing}
}

// Status reports overall health. The boolean is false when a dependency
// check fails.
func (s *Service) Status() (map[string]any, bool) {
	payload := map[string]any{"ok": true}
	if s.DBPing != nil {
		if err := s.DBPing(); err != nil {
			payload["ok"] = false
			payload["database"] = "unreachable"
			return payload, false
		}
		payload["database"] = "ok"
	}
	return payload, true
}
