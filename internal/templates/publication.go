package templates

import (
	"strconv"
	"strings"

	"scipress-events/internal/domain/deposit"
)

// PublicationVars projects a populated deposit into template
// variables. The access-right and accepted-for sentinels map to the
// empty string. The track key is omitted entirely when the track is
// unset; every other optional field maps to "".
func PublicationVars(d *deposit.Deposit, templateName, baseURL string) Vars {
	authors := make([]string, 0, len(d.Authors))
	for _, a := range d.Authors {
		authors = append(authors, strings.TrimSpace(a.FirstName+" "+a.LastName))
	}

	accessRight := d.AccessRight
	if accessRight == deposit.AccessRightNone {
		accessRight = ""
	}
	acceptedFor := d.AcceptedFor
	if acceptedFor == deposit.AcceptedForNone {
		acceptedFor = ""
	}

	vars := Vars{
		"PUBLICATION_TITLE":        d.Title,
		"PUBLICATION_ABSTRACT":     d.Abstract,
		"PUBLICATION_AUTHORS":      strings.Join(authors, ", "),
		"PUBLICATION_KEYWORDS":     strings.Join(d.Keywords, ", "),
		"PUBLICATION_DISCIPLINES":  strings.Join(d.Disciplines, ", "),
		"PUBLICATION_TYPE":         d.PublicationType,
		"PUBLICATION_VERSION":      strconv.Itoa(d.Version),
		"PUBLICATION_ACCESS_RIGHT": accessRight,
		"PUBLICATION_ACCEPTED_FOR": acceptedFor,
		"PUBLICATION_DOI":          d.Doi,
		"PUBLICATION_LINK":         trackedLink(baseURL, "/deposits/"+d.ID.String()+"/view", templateName),
	}
	if d.Track != "" {
		vars["PUBLICATION_TRACK"] = d.Track
	}
	return vars
}
