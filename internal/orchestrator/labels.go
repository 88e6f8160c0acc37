package orchestrator

import "github.com/tracker-tv/github-pr-gatekeeper/models"

var (
	LabelInvalidFileName = models.Label{
		Name:        "invalid-file-name",
		Color:       "d93f0b",
		Description: "File names must be lowercase, without spaces, with an allowed extension",
	}
	LabelInvalidFileExtension = models.Label{
		Name:        "invalid-file-extension",
		Color:       "e99695",
		Description: "File extension is not allowed",
	}
	LabelNewRootDir = models.Label{
		Name:        "new-root-dir",
		Color:       "fbca04",
		Description: "Adds a new top-level directory",
	}
	LabelLargeFile = models.Label{
		Name:        "lf-detected",
		Color:       "b60205",
		Description: "Large file detected",
	}
)

// LabelResolver maps the violated categories of a run to the labels that
// should be applied to the pull request.
type LabelResolver interface {
	Resolve(categories []models.ViolationCategory) []models.Label
}

// CategoryLabels is the fixed category to label mapping. Both filename-shape
// problems share one label unless SplitExtension is set.
type CategoryLabels struct {
	SplitExtension bool
}

func (c CategoryLabels) LabelFor(category models.ViolationCategory) models.Label {
	switch category {
	case models.InvalidExtension:
		if c.SplitExtension {
			return LabelInvalidFileExtension
		}
		return LabelInvalidFileName
	case models.UnapprovedRootDirectory:
		return LabelNewRootDir
	case models.OversizedFile:
		return LabelLargeFile
	default:
		return LabelInvalidFileName
	}
}

// Resolve returns one label per distinct name, in category order.
func (c CategoryLabels) Resolve(categories []models.ViolationCategory) []models.Label {
	seen := make(map[string]struct{}, len(categories))
	var labels []models.Label
	for _, category := range categories {
		label := c.LabelFor(category)
		if _, ok := seen[label.Name]; ok {
			continue
		}
		seen[label.Name] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}
