package nomination

import (
	"feedback360-backend/models"
	dbmodels "feedback360-backend/models/db"
)

// AdmissionInput - собранные факты для проверки допуска номинации.
// Сами проверки чистые, сбор фактов остается за обработчиком.
type AdmissionInput struct {
	PhaseOpen            bool
	RequesterEligible    bool
	Requester            dbmodels.Employee
	Reviewer             dbmodels.Employee
	ReviewerFound        bool
	ReviewerEligible     bool
	Relationship         models.RelationshipType
	PreviouslyRejected   bool
	DuplicateExists      bool
	RequesterActiveCount int64
	ReviewerLoad         int
	RequesterCapacity    int
	ReviewerCapacity     int
}

// Evaluate - предусловия допуска в строгом порядке, первый отказ выигрывает.
// Порядок закреплен: закрытый период, самовыдвижение, руководитель,
// недопустимый ревьюер, отклоненная пара, дубль, лимит запросившего,
// лимит ревьюера, право на внешнего ревьюера.
func Evaluate(in AdmissionInput) *models.AdmissionError {
	if !in.RequesterEligible || !in.PhaseOpen {
		return admissionErr(models.AdmissionNominationClosed)
	}
	if in.Requester.ID == in.Reviewer.ID {
		return admissionErr(models.AdmissionSelfNomination)
	}
	if in.Relationship == models.RelationshipManager {
		return admissionErr(models.AdmissionManagerBlocked)
	}
	if !in.ReviewerFound || !in.ReviewerEligible {
		return admissionErr(models.AdmissionReviewerIneligible)
	}
	if in.PreviouslyRejected {
		return admissionErr(models.AdmissionPreviouslyRejected)
	}
	if in.DuplicateExists {
		return admissionErr(models.AdmissionDuplicateNomination)
	}
	if in.RequesterActiveCount >= int64(in.RequesterCapacity) {
		return admissionErr(models.AdmissionRequesterAtCapacity)
	}
	if in.ReviewerLoad >= in.ReviewerCapacity {
		return admissionErr(models.AdmissionReviewerAtCapacity)
	}
	if in.Relationship == models.RelationshipExternal && in.Requester.DesignationRank < models.RankManager {
		return admissionErr(models.AdmissionExternalNotPermitted)
	}
	return nil
}

func admissionErr(e models.AdmissionError) *models.AdmissionError {
	return &e
}
