package nomination

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/config"
	"feedback360-backend/db"
	rejectionstore "feedback360-backend/lib/approval/rejection-store"
	cyclestore "feedback360-backend/lib/cycle/store"
	"feedback360-backend/lib/deadline"
	"feedback360-backend/lib/eligibility"
	employeestore "feedback360-backend/lib/employee/store"
	loadstore "feedback360-backend/lib/nomination/load-store"
	nominationstore "feedback360-backend/lib/nomination/store"
	"feedback360-backend/lib/notification"
	"feedback360-backend/lib/relationship"
	"feedback360-backend/lib/utils/helpers"
	"feedback360-backend/models"
	feedbackapimodels "feedback360-backend/models/api/feedback"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	Submit(requesterID string, data feedbackapimodels.NominationData) (id string, admission *models.AdmissionError, err error)
	ListMy(requesterID string) (list []feedbackapimodels.NominationView, err error)
	ListCandidates(requesterID string) (list []feedbackapimodels.ReviewerView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:            db.DB,
		cycleStore:    cyclestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		nomStore:      nominationstore.NewInstance(db.DB),
		loadStore:     loadstore.NewInstance(db.DB),
		policy:        eligibility.NewPolicy(),
	}
}

type impl struct {
	db            *gorm.DB
	cycleStore    cyclestore.Provider
	employeeStore employeestore.Provider
	nomStore      nominationstore.Provider
	loadStore     loadstore.Provider
	policy        eligibility.Policy
}

// Submit - контроллер допуска, единственная точка создания номинации.
// Проверки, зависящие от счетчиков, выполняются в транзакции под блокировкой
// строки нагрузки ревьюера: конкурентные выдвижения одного ревьюера
// сериализуются и не могут обойти лимит.
func (i impl) Submit(requesterID string, data feedbackapimodels.NominationData) (id string, admission *models.AdmissionError, err error) {
	if err = data.Validate(); err != nil {
		return "", nil, err
	}
	now := time.Now()
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		e := models.AdmissionNominationClosed
		return "", &e, nil
	}
	requester, err := i.employeeStore.GetByID(requesterID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if requester == nil {
		return "", nil, errors.New("запросивший сотрудник не найден")
	}
	phase, err := deadline.Instance.PhaseFor(*cycleRec, requesterID, now)
	if err != nil {
		return "", nil, err
	}
	in := AdmissionInput{
		PhaseOpen:         phase == models.CyclePhaseNomination,
		RequesterEligible: i.policy.CanRequest(*requester, now),
		Requester:         *requester,
		RequesterCapacity: config.Conf.Policy.RequesterCapacity,
		ReviewerCapacity:  config.Conf.Policy.ReviewerCapacity,
	}
	reviewer, err := i.employeeStore.GetByID(data.ReviewerID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if reviewer != nil {
		in.Reviewer = *reviewer
		in.ReviewerFound = true
		in.ReviewerEligible = i.policy.CanBeReviewer(*reviewer, now)
		in.Relationship = relationship.Classify(*requester, *reviewer)
	} else {
		in.Reviewer = dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: data.ReviewerID}}
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		nomStore := nominationstore.NewInstance(tx)
		// блокировка строки нагрузки до конца транзакции
		loadRec, err := loadstore.NewInstance(tx).GetForUpdate(cycleRec.ID, data.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка блокировки счетчика нагрузки")
		}
		in.ReviewerLoad = loadRec.Count
		in.PreviouslyRejected, err = rejectionstore.NewInstance(tx).Exists(cycleRec.ID, requesterID, data.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки реестра отклонений")
		}
		pairRec, err := nomStore.FindActivePair(cycleRec.ID, requesterID, data.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки дублей")
		}
		in.DuplicateExists = pairRec != nil
		in.RequesterActiveCount, err = nomStore.CountActiveByRequester(cycleRec.ID, requesterID)
		if err != nil {
			return errors.Wrap(err, "ошибка подсчета номинаций")
		}
		admission = Evaluate(in)
		if admission != nil {
			return nil
		}
		id, err = nomStore.Create(dbmodels.Nomination{
			CycleID:         cycleRec.ID,
			RequesterID:     requesterID,
			ReviewerID:      data.ReviewerID,
			Relationship:    in.Relationship,
			ApprovalState:   models.ApprovalStatePending,
			AcceptanceState: models.AcceptanceStatePending,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания номинации")
		}
		err = loadstore.NewInstance(tx).Increment(cycleRec.ID, data.ReviewerID)
		if err != nil {
			return errors.Wrap(err, "ошибка учета нагрузки ревьюера")
		}
		return i.notifyManager(tx, *cycleRec, *requester, in.Reviewer, in.Relationship)
	})
	if err != nil {
		return "", nil, err
	}
	if admission != nil {
		return "", admission, nil
	}
	return id, nil, nil
}

func (i impl) ListMy(requesterID string) (list []feedbackapimodels.NominationView, err error) {
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return []feedbackapimodels.NominationView{}, nil
	}
	recs, err := i.nomStore.ListByRequester(cycleRec.ID, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения номинаций")
	}
	list = make([]feedbackapimodels.NominationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, feedbackapimodels.NominationConvert(rec))
	}
	return list, nil
}

// ListCandidates - активные сотрудники с признаками доступности.
// Исключение кандидатов везде считается одними и теми же правилами
// контроллера допуска, на стороне интерфейса ничего не фильтруется.
func (i impl) ListCandidates(requesterID string) (list []feedbackapimodels.ReviewerView, err error) {
	now := time.Now()
	cycleRec, err := i.cycleStore.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения активного цикла")
	}
	if cycleRec == nil {
		return []feedbackapimodels.ReviewerView{}, nil
	}
	requester, err := i.employeeStore.GetByID(requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if requester == nil {
		return nil, errors.New("запросивший сотрудник не найден")
	}
	candidates, err := i.employeeStore.ListActive()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	list = make([]feedbackapimodels.ReviewerView, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == requesterID {
			continue
		}
		rel := relationship.Classify(*requester, candidate)
		item := feedbackapimodels.ReviewerView{
			ID:           candidate.ID,
			FullName:     candidate.GetFullName(),
			Team:         candidate.Team,
			Designation:  candidate.Designation,
			Relationship: rel,
			IsSelectable: true,
		}
		loadRec, err := i.loadStore.Get(cycleRec.ID, candidate.ID)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения счетчика нагрузки")
		}
		if loadRec != nil {
			item.LoadCount = loadRec.Count
		}
		switch {
		case rel == models.RelationshipManager:
			item.IsSelectable = false
			item.BlockReason = models.AdmissionManagerBlocked.ToHuman()
		case !i.policy.CanBeReviewer(candidate, now):
			item.IsSelectable = false
			item.BlockReason = models.AdmissionReviewerIneligible.ToHuman()
		case item.LoadCount >= config.Conf.Policy.ReviewerCapacity:
			item.IsSelectable = false
			item.BlockReason = models.AdmissionReviewerAtCapacity.ToHuman()
		case rel == models.RelationshipExternal && requester.DesignationRank < models.RankManager:
			item.IsSelectable = false
			item.BlockReason = models.AdmissionExternalNotPermitted.ToHuman()
		}
		list = append(list, item)
	}
	return list, nil
}

// notifyManager - руководителю запросившего уходит запрос согласования.
// Сотрудник без руководителя согласуется сборкой по дедлайну.
func (i impl) notifyManager(tx *gorm.DB, cycle dbmodels.ReviewCycle, requester, reviewer dbmodels.Employee, rel models.RelationshipType) error {
	if requester.Manager == nil {
		return nil
	}
	err := notification.NewHandlerWithTx(tx).EnqueueApprovalNeeded(requester.Manager.Email, models.ApprovalNeededTemplateData{
		ManagerName:   requester.Manager.GetFullName(),
		RequesterName: requester.GetFullName(),
		ReviewerName:  reviewer.GetFullName(),
		Relationship:  rel.ToHuman(),
		Deadline:      helpers.FormatDate(cycle.NominationDeadline),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка постановки уведомления в очередь")
	}
	return nil
}
