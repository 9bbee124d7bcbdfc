package classifier

import "encoding/json"

// Tag is one free-form content tag on a source article.
type Tag struct {
	Label string `json:"label"`
}

// Feeling appears in exports either as a plain string or as a
// {label, value} object. Unrecognized shapes decode to an empty label and
// are skipped downstream.
type Feeling struct {
	Label string
}

func (f *Feeling) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Label = s
		return nil
	}

	var obj struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		f.Label = obj.Label
		return nil
	}

	f.Label = ""
	return nil
}

// Article is one record of the source CMS export. Read-only.
type Article struct {
	Path     string    `json:"path"`
	Title    string    `json:"title"`
	Name     string    `json:"name"`
	Tags     []Tag     `json:"tags"`
	Feelings []Feeling `json:"feelings"`
}

// Export is the article metadata export from the source CMS.
type Export struct {
	Articles []Article `json:"articles"`
}

// Result is the per-page field population record consumed by the
// field-population automation on the target CMS.
type Result struct {
	DrupalPath string              `json:"drupal_path"`
	SanityPath string              `json:"sanity_path"`
	Title      string              `json:"title"`
	Fields     map[string][]string `json:"fields"`
}
