package scoring

import "quizapp-service/internal/models"

// CanAccess decides whether a user may view or take a quiz. Public quizzes
// and the owner's own quizzes are always accessible. Anyone else must
// supply the quiz's exact password. There is no attempt limit; this is a
// sharing convenience, not a security boundary.
func CanAccess(quiz *models.Quiz, userID, password string) error {
	if !quiz.IsPrivate {
		return nil
	}
	if userID != "" && userID == quiz.OwnerID {
		return nil
	}
	if password == "" {
		return models.ErrAccessDenied
	}
	if password != quiz.Password {
		return models.ErrIncorrectPassword
	}
	return nil
}
