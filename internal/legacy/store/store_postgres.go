package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"afternote/internal/legacy/models"
	id "afternote/pkg/domain"
	"afternote/pkg/platform/sentinel"
)

// PostgresStore reads legacy content through a pgx pool. Every query is
// filtered by owner and receiver so rows outside the share set never load.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const timeLetterColumns = `t.id, tr.id, t.owner_id, tr.receiver_id, t.title, t.content, t.status,
	t.send_at, tr.delivered_at, tr.read_at, t.created_at`

func (s *PostgresStore) ListTimeLetters(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.TimeLetter, int, error) {
	var total int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM time_letter_receivers tr
		JOIN time_letters t ON t.id = tr.time_letter_id
		WHERE t.owner_id = $1 AND tr.receiver_id = $2`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count time letters: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+timeLetterColumns+`
		FROM time_letter_receivers tr
		JOIN time_letters t ON t.id = tr.time_letter_id
		WHERE t.owner_id = $1 AND tr.receiver_id = $2
		ORDER BY t.created_at DESC, tr.id
		LIMIT $3 OFFSET $4`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID), page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query time letters: %w", err)
	}
	defer rows.Close()

	letters := make([]*models.TimeLetter, 0)
	for rows.Next() {
		letter, err := scanTimeLetter(rows)
		if err != nil {
			return nil, 0, err
		}
		letters = append(letters, letter)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating time letters: %w", err)
	}
	if err := s.attachMedia(ctx, letters); err != nil {
		return nil, 0, err
	}
	return letters, total, nil
}

func (s *PostgresStore) FindTimeLetter(ctx context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID) (*models.TimeLetter, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+timeLetterColumns+`
		FROM time_letter_receivers tr
		JOIN time_letters t ON t.id = tr.time_letter_id
		WHERE tr.id = $1 AND t.owner_id = $2 AND tr.receiver_id = $3`,
		uuid.UUID(deliveryID), uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	)
	letter, err := scanTimeLetter(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("time letter %s: %w", deliveryID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := s.attachMedia(ctx, []*models.TimeLetter{letter}); err != nil {
		return nil, err
	}
	return letter, nil
}

// MarkTimeLetterRead only writes read_at while it is NULL, so the first read
// time sticks. It reports whether this call set it.
func (s *PostgresStore) MarkTimeLetterRead(ctx context.Context, scope models.Scope, deliveryID id.TimeLetterReceiverID, at time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE time_letter_receivers tr SET read_at = $1
		FROM time_letters t
		WHERE t.id = tr.time_letter_id
		  AND tr.id = $2 AND tr.receiver_id = $3 AND t.owner_id = $4
		  AND tr.read_at IS NULL`,
		at, uuid.UUID(deliveryID), uuid.UUID(scope.ReceiverID), uuid.UUID(scope.OwnerID),
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark time letter read: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}
	// Nothing updated: either already read or not in the share set.
	if _, err := s.FindTimeLetter(ctx, scope, deliveryID); err != nil {
		return false, err
	}
	return false, nil
}

func (s *PostgresStore) CountTimeLetters(ctx context.Context, scope models.Scope) (int, int, error) {
	var total, unread int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE tr.read_at IS NULL)
		FROM time_letter_receivers tr
		JOIN time_letters t ON t.id = tr.time_letter_id
		WHERE t.owner_id = $1 AND tr.receiver_id = $2`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	).Scan(&total, &unread)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count time letters: %w", err)
	}
	return total, unread, nil
}

func (s *PostgresStore) attachMedia(ctx context.Context, letters []*models.TimeLetter) error {
	if len(letters) == 0 {
		return nil
	}
	byLetter := make(map[uuid.UUID][]*models.TimeLetter, len(letters))
	ids := make([]uuid.UUID, 0, len(letters))
	for _, l := range letters {
		key := uuid.UUID(l.ID)
		if _, seen := byLetter[key]; !seen {
			ids = append(ids, key)
		}
		byLetter[key] = append(byLetter[key], l)
		l.Media = []models.TimeLetterMedia{}
	}

	rows, err := s.pool.Query(ctx, `
		SELECT time_letter_id, id, media_type, media_url
		FROM time_letter_media
		WHERE time_letter_id = ANY($1)
		ORDER BY position, id`, ids)
	if err != nil {
		return fmt.Errorf("failed to query time letter media: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var letterID uuid.UUID
		var m models.TimeLetterMedia
		if err := rows.Scan(&letterID, &m.ID, &m.MediaType, &m.MediaURL); err != nil {
			return fmt.Errorf("failed to scan time letter media: %w", err)
		}
		for _, l := range byLetter[letterID] {
			l.Media = append(l.Media, m)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating time letter media: %w", err)
	}
	return nil
}

const mindRecordColumns = `r.id, r.owner_id, r.type, r.title, r.content, r.record_date,
	r.question_content, r.category, r.created_at`

func (s *PostgresStore) ListMindRecords(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.MindRecord, int, error) {
	total, err := s.CountMindRecords(ctx, scope)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+mindRecordColumns+`
		FROM mind_records r
		JOIN mind_record_shares sh ON sh.mind_record_id = r.id
		WHERE r.owner_id = $1 AND sh.receiver_id = $2
		ORDER BY r.created_at DESC, r.id
		LIMIT $3 OFFSET $4`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID), page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query mind records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.MindRecord, 0)
	for rows.Next() {
		record, err := scanMindRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating mind records: %w", err)
	}
	return records, total, nil
}

func (s *PostgresStore) FindMindRecord(ctx context.Context, scope models.Scope, recordID id.MindRecordID) (*models.MindRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+mindRecordColumns+`
		FROM mind_records r
		JOIN mind_record_shares sh ON sh.mind_record_id = r.id
		WHERE r.id = $1 AND r.owner_id = $2 AND sh.receiver_id = $3`,
		uuid.UUID(recordID), uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	)
	record, err := scanMindRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("mind record %s: %w", recordID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, media_type, image_url FROM mind_record_images
		WHERE mind_record_id = $1
		ORDER BY position, id`, uuid.UUID(recordID))
	if err != nil {
		return nil, fmt.Errorf("failed to query mind record images: %w", err)
	}
	defer rows.Close()

	record.Images = []models.MindRecordImage{}
	for rows.Next() {
		var img models.MindRecordImage
		if err := rows.Scan(&img.ID, &img.MediaType, &img.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan mind record image: %w", err)
		}
		record.Images = append(record.Images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mind record images: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) CountMindRecords(ctx context.Context, scope models.Scope) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM mind_records r
		JOIN mind_record_shares sh ON sh.mind_record_id = r.id
		WHERE r.owner_id = $1 AND sh.receiver_id = $2`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count mind records: %w", err)
	}
	return total, nil
}

const afternoteColumns = `a.id, a.owner_id, a.category, a.title, a.process_method, a.actions,
	a.leave_message, a.atmosphere, a.memorial_video_url, a.memorial_thumbnail, a.created_at`

func (s *PostgresStore) ListAfternotes(ctx context.Context, scope models.Scope, page models.PageRequest) ([]*models.Afternote, int, error) {
	total, err := s.CountAfternotes(ctx, scope)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+afternoteColumns+`
		FROM afternotes a
		JOIN afternote_shares sh ON sh.afternote_id = a.id
		WHERE a.owner_id = $1 AND sh.receiver_id = $2
		ORDER BY a.created_at DESC, a.id
		LIMIT $3 OFFSET $4`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID), page.Limit, page.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query afternotes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.Afternote, 0)
	for rows.Next() {
		note, err := scanAfternote(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating afternotes: %w", err)
	}
	return notes, total, nil
}

func (s *PostgresStore) FindAfternote(ctx context.Context, scope models.Scope, noteID id.AfternoteID) (*models.Afternote, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+afternoteColumns+`
		FROM afternotes a
		JOIN afternote_shares sh ON sh.afternote_id = a.id
		WHERE a.id = $1 AND a.owner_id = $2 AND sh.receiver_id = $3`,
		uuid.UUID(noteID), uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	)
	note, err := scanAfternote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("afternote %s: %w", noteID, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT title, artist, cover_url FROM afternote_songs
		WHERE afternote_id = $1
		ORDER BY position`, uuid.UUID(noteID))
	if err != nil {
		return nil, fmt.Errorf("failed to query afternote songs: %w", err)
	}
	defer rows.Close()

	note.Songs = []models.Song{}
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.Title, &song.Artist, &song.CoverURL); err != nil {
			return nil, fmt.Errorf("failed to scan afternote song: %w", err)
		}
		note.Songs = append(note.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating afternote songs: %w", err)
	}
	return note, nil
}

func (s *PostgresStore) CountAfternotes(ctx context.Context, scope models.Scope) (int, error) {
	var total int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM afternotes a
		JOIN afternote_shares sh ON sh.afternote_id = a.id
		WHERE a.owner_id = $1 AND sh.receiver_id = $2`,
		uuid.UUID(scope.OwnerID), uuid.UUID(scope.ReceiverID),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count afternotes: %w", err)
	}
	return total, nil
}

func scanTimeLetter(row pgx.Row) (*models.TimeLetter, error) {
	var letterID, deliveryID, ownerID, receiverID uuid.UUID
	var l models.TimeLetter
	err := row.Scan(
		&letterID,
		&deliveryID,
		&ownerID,
		&receiverID,
		&l.Title,
		&l.Content,
		&l.Status,
		&l.SendAt,
		&l.DeliveredAt,
		&l.ReadAt,
		&l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan time letter: %w", err)
	}
	l.ID = id.TimeLetterID(letterID)
	l.DeliveryID = id.TimeLetterReceiverID(deliveryID)
	l.OwnerID = id.OwnerID(ownerID)
	l.ReceiverID = id.ReceiverID(receiverID)
	return &l, nil
}

func scanMindRecord(row pgx.Row) (*models.MindRecord, error) {
	var recordID, ownerID uuid.UUID
	var recordDate time.Time
	var r models.MindRecord
	err := row.Scan(
		&recordID,
		&ownerID,
		&r.Type,
		&r.Title,
		&r.Content,
		&recordDate,
		&r.QuestionContent,
		&r.Category,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan mind record: %w", err)
	}
	r.ID = id.MindRecordID(recordID)
	r.OwnerID = id.OwnerID(ownerID)
	r.RecordDate = id.DateOf(recordDate)
	return &r, nil
}

func scanAfternote(row pgx.Row) (*models.Afternote, error) {
	var noteID, ownerID uuid.UUID
	var a models.Afternote
	err := row.Scan(
		&noteID,
		&ownerID,
		&a.Category,
		&a.Title,
		&a.ProcessMethod,
		&a.Actions,
		&a.LeaveMessage,
		&a.Atmosphere,
		&a.MemorialVideoURL,
		&a.MemorialThumbnailURL,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan afternote: %w", err)
	}
	a.ID = id.AfternoteID(noteID)
	a.OwnerID = id.OwnerID(ownerID)
	a.NormalizeActions()
	return &a, nil
}
