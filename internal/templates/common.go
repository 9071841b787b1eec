package templates

import "net/url"

// Vars is the flat variable map consumed by the email renderer.
// Optional entity fields resolve to "" rather than being omitted; the
// renderer treats a missing key and an empty string differently and
// only the empty string is safe to substitute everywhere.
type Vars map[string]string

// Merge combines variable maps. Later maps win on key collisions.
func Merge(maps ...Vars) Vars {
	out := make(Vars)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// CommonVars are the platform-level variables every template may use.
func CommonVars(baseURL string) Vars {
	return Vars{
		"PLATFORM_NAME": "SciPress",
		"BASE_URL":      baseURL,
		"LOGO_URL":      baseURL + "/assets/logo.png",
	}
}

// trackedLink tags an outbound link with the template name that
// produced it, so clicks can be attributed per campaign.
func trackedLink(baseURL, path, templateName string) string {
	link := baseURL + path
	if templateName == "" {
		return link
	}
	return link + "?utm_source=email&utm_medium=email&utm_campaign=" + url.QueryEscape(templateName)
}
