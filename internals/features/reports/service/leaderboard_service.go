package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TopPerformer struct {
	UserID         uuid.UUID `json:"userId"`
	Name           string    `json:"name"`
	AttendanceDays int64     `json:"attendanceDays"`
	GathaCount     int64     `json:"gathaCount"`
}

const (
	RankByAttendance = "attendance"
	RankByGatha      = "gatha"
)

// TopPerformers ranks active students over [start, end] by approved
// attendance days or by approved gatha count, the other metric breaking
// ties. A non-empty userIDs slice restricts the ranking to those students
// (the family leaderboard path).
func TopPerformers(db *gorm.DB, start, end time.Time, limit int, userIDs []string, rankBy string) ([]TopPerformer, error) {
	s, e := datatypes.Date(start), datatypes.Date(end)

	query := `
		SELECT u.id AS user_id, u.name,
		       COALESCE(att.days, 0)  AS attendance_days,
		       COALESCE(gat.total, 0) AS gatha_count
		FROM users u
		LEFT JOIN (
			SELECT user_id, COUNT(*) AS days
			FROM attendances
			WHERE status = 'approved' AND date >= ? AND date <= ?
			GROUP BY user_id
		) att ON att.user_id = u.id
		LEFT JOIN (
			SELECT user_id, SUM(gatha_count) AS total
			FROM gathas
			WHERE status = 'approved' AND date >= ? AND date <= ?
			GROUP BY user_id
		) gat ON gat.user_id = u.id
		WHERE u.is_active = TRUE`
	args := []interface{}{s, e, s, e}

	if len(userIDs) > 0 {
		query += ` AND u.id = ANY(?)`
		args = append(args, pq.Array(userIDs))
	}
	if rankBy == RankByGatha {
		query += `
		ORDER BY gatha_count DESC, attendance_days DESC, u.name ASC
		LIMIT ?`
	} else {
		query += `
		ORDER BY attendance_days DESC, gatha_count DESC, u.name ASC
		LIMIT ?`
	}
	args = append(args, limit)

	var performers []TopPerformer
	if err := db.Raw(query, args...).Scan(&performers).Error; err != nil {
		return nil, err
	}
	if performers == nil {
		performers = []TopPerformer{}
	}
	return performers, nil
}
