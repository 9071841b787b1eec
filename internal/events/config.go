package events

// baseURL is the frontend base used when templates build outbound
// links. Set once at startup, before any event is rendered.
var baseURL string

func SetBaseURL(url string) {
	baseURL = url
}

func BaseURL() string {
	return baseURL
}
