package usecase

const (
	logPrefixAnswer = "internal.coach.usecase.Answer"
	logPrefixRoute  = "internal.coach.usecase.Route"
)
