package templates

import "scipress-events/internal/domain/community"

// CommunityVars projects a community into template variables.
func CommunityVars(c *community.Community, templateName, baseURL string) Vars {
	return Vars{
		"COMMUNITY_NAME":        c.Name,
		"COMMUNITY_DESCRIPTION": c.Description,
		"COMMUNITY_GUIDELINES":  c.Guidelines,
		"COMMUNITY_COUNTRY":     c.Country,
		"COMMUNITY_WEBSITE":     c.WebsiteURL,
		"COMMUNITY_LOGO":        c.LogoURL,
		"COMMUNITY_LINK":        trackedLink(baseURL, "/communities/"+c.Codename+"/view", templateName),
	}
}
