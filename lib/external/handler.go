package external

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"feedback360-backend/config"
	"feedback360-backend/db"
	externalstore "feedback360-backend/lib/external/store"
	"feedback360-backend/lib/review"
	dbmodels "feedback360-backend/models/db"
)

type Provider interface {
	IssueToken(rec dbmodels.Nomination) (token string, err error)
	Validate(token string) (nominationID string, hMsg string, err error)
	Use(token string) (nominationID string, hMsg string, err error)
	RevokeByNomination(nominationID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: externalstore.NewInstance(db.DB),
	}
}

// NewHandlerWithTx - выдача токена в транзакции согласования номинации
func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:    tx,
		store: externalstore.NewInstance(tx),
	}
}

type impl struct {
	db    *gorm.DB
	store externalstore.Provider
}

func FormURL() string {
	return config.Conf.Auth.ExternalFormURL
}

// IssueToken - подписанный токен доступа внешнего ревьюера к форме.
// Идентификатор токена учитывается отдельной записью, чтобы токен можно
// было отозвать до истечения срока.
func (i impl) IssueToken(rec dbmodels.Nomination) (token string, err error) {
	tokenID := uuid.NewString()
	expiresAt := time.Now().Add(time.Duration(config.Conf.Auth.ExternalTokenTTLHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub": rec.ID,
		"jti": tokenID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Conf.Auth.JWTSecret))
	if err != nil {
		return "", errors.Wrap(err, "ошибка подписи токена")
	}
	_, err = i.store.Create(dbmodels.ExternalToken{
		NominationID: rec.ID,
		TokenID:      tokenID,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения токена")
	}
	return token, nil
}

// Validate - проверка токена без побочных эффектов.
// Ошибка авторизации возвращается как hMsg и не подлежит повтору.
func (i impl) Validate(token string) (nominationID string, hMsg string, err error) {
	claims, parsed, err := parseClaims(token)
	if err != nil || !parsed.Valid {
		return "", "токен недействителен", nil
	}
	tokenID, _ := claims["jti"].(string)
	nominationID, _ = claims["sub"].(string)
	if tokenID == "" || nominationID == "" {
		return "", "токен недействителен", nil
	}
	rec, err := i.store.GetByTokenID(tokenID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки токена")
	}
	if rec == nil || rec.NominationID != nominationID {
		return "", "токен недействителен", nil
	}
	if rec.RevokedAt != nil {
		return "", "токен отозван", nil
	}
	if time.Now().After(rec.ExpiresAt) {
		return "", "срок действия токена истек", nil
	}
	return nominationID, "", nil
}

// Use - предъявление токена внешним ревьюером.
// Первое валидное предъявление считается согласием на участие и переводит
// номинацию сразу в работу, этап явного принятия для внешних пропускается.
func (i impl) Use(token string) (nominationID string, hMsg string, err error) {
	nominationID, hMsg, err = i.Validate(token)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	claims, _, err := parseClaims(token)
	if err != nil {
		return "", "", err
	}
	tokenID, _ := claims["jti"].(string)
	rec, err := i.store.GetByTokenID(tokenID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка проверки токена")
	}
	if rec != nil && rec.FirstUsedAt == nil {
		// первое использование и перевод номинации в работу фиксируются вместе
		err = i.db.Transaction(func(tx *gorm.DB) error {
			err := externalstore.NewInstance(tx).MarkFirstUsed(rec.ID)
			if err != nil {
				return errors.Wrap(err, "ошибка фиксации использования токена")
			}
			hMsg, err = review.NewHandlerWithTx(tx).BeginExternal(nominationID)
			return err
		})
		if err != nil {
			return "", "", err
		}
		if hMsg != "" {
			return "", hMsg, nil
		}
	}
	return nominationID, "", nil
}

func (i impl) RevokeByNomination(nominationID string) error {
	err := i.store.RevokeByNomination(nominationID)
	if err != nil {
		return errors.Wrap(err, "ошибка отзыва токенов")
	}
	return nil
}

func parseClaims(token string) (jwt.MapClaims, *jwt.Token, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка разбора токена")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("неожиданный формат утверждений токена")
	}
	return claims, parsed, nil
}
