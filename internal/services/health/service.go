package health

// Version identifies the running release in the health payload.
const Version = "3.0 - Groq Powered (Free & Fast)"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the health payload served at the root endpoint.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":  "Resume Analyzer API is running!",
		"version": Version,
	}
}
