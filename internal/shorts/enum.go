package shorts

type ShortStatus string

const (
	StatusDraft      ShortStatus = "draft"
	StatusInProgress ShortStatus = "in_progress"
	StatusCompleted  ShortStatus = "completed"
)

var AllStatuses = []ShortStatus{
	StatusDraft,
	StatusInProgress,
	StatusCompleted,
}

func (s ShortStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
