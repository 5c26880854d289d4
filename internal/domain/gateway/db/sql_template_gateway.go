package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"packmate-api/internal/domain/entity"
)

type SQLTemplateGateway struct {
	DB *sql.DB
}

var _ TemplateGateway = (*SQLTemplateGateway)(nil)

func NewSQLTemplateGateway(db *sql.DB) *SQLTemplateGateway {
	return &SQLTemplateGateway{DB: db}
}

func (gateway *SQLTemplateGateway) FindAllByUser(userID string, offset int, limit int) ([]entity.Template, error) {
	rows, err := gateway.DB.Query(`
		SELECT id, user_id, name, content, created_at, updated_at
		FROM templates
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = closeErr
		}
	}()

	results := make([]entity.Template, 0)
	for rows.Next() {
		var t entity.Template
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, nil
}

func (gateway *SQLTemplateGateway) CountByUser(userID string) (int64, error) {
	var count int64
	err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM templates WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (gateway *SQLTemplateGateway) FindByIDAndUser(id string, userID string) (*entity.Template, error) {
	var t entity.Template
	err := gateway.DB.QueryRow(`
		SELECT id, user_id, name, content, created_at, updated_at
		FROM templates
		WHERE id = $1 AND user_id = $2`, id, userID).
		Scan(&t.ID, &t.UserID, &t.Name, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (gateway *SQLTemplateGateway) Create(template entity.Template) (*entity.Template, error) {
	template.ID = uuid.New().String()
	now := time.Now().UTC().Format(timeLayout)
	template.CreatedAt = now
	template.UpdatedAt = now

	_, err := gateway.DB.Exec(`
		INSERT INTO templates (id, user_id, name, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		template.ID, template.UserID, template.Name, template.Content,
		template.CreatedAt, template.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &template, nil
}

func (gateway *SQLTemplateGateway) UpdateByIDAndUser(id string, userID string, updated entity.Template) (*entity.Template, error) {
	updated.ID = id
	updated.UserID = userID
	updated.UpdatedAt = time.Now().UTC().Format(timeLayout)

	result, err := gateway.DB.Exec(`
		UPDATE templates
		SET name = $1, content = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5`,
		updated.Name, updated.Content, updated.UpdatedAt, id, userID)
	if err != nil {
		return nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return gateway.FindByIDAndUser(id, userID)
}

func (gateway *SQLTemplateGateway) DeleteByIDAndUser(id string, userID string) error {
	result, err := gateway.DB.Exec(`DELETE FROM templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
