package repository

import (
	"context"

	"quizapp-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("userAnswers")}
}

// CreateIfAbsent inserts the response under its composite id. The unique
// _id makes a concurrent double-submission a duplicate-key error instead
// of a lost write, so there is no separate existence check to race with.
func (r *AnswerRepository) CreateIfAbsent(ctx context.Context, answer *models.UserAnswer) error {
	answer.ID = models.AnswerKey(answer.UserID, answer.QuizID)
	_, err := r.Col.InsertOne(ctx, answer)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrAlreadyAnswered
	}
	return err
}

func (r *AnswerRepository) FindByUserAndQuiz(ctx context.Context, userID, quizID string) (*models.UserAnswer, error) {
	var answer models.UserAnswer
	err := r.Col.FindOne(ctx, bson.M{"_id": models.AnswerKey(userID, quizID)}).Decode(&answer)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrAnswerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *AnswerRepository) FindByUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.UserAnswer
	if err := cur.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *AnswerRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.UserAnswer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quizId": quizID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.UserAnswer
	if err := cur.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
