package shared

const (
	SlideTypeText      = "text"
	SlideTypeContent   = "content"
	SlideTypeImage     = "image"
	SlideTypeHighlight = "highlight"
	SlideTypeQuestion  = "question"
	SlideTypeQuiz      = "quiz"
	SlideTypeFlashcard = "flashcard"
	SlideTypeSteps     = "steps"
	SlideTypeTabs      = "tabs"
	SlideTypeAccordion = "accordion"
	SlideTypeAudio     = "audio"
	SlideTypeVideo     = "video"
	SlideTypeYoutube   = "youtube"

	TaskTypeQuiz            = "quiz"
	TaskTypeVideo           = "video"
	TaskTypeCaseStudy       = "case-study"
	TaskTypeFinalAssessment = "final-assessment"

	MediaKindImage = "image"
	MediaKindAudio = "audio"
	MediaKindVideo = "video"
)
