package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// 加载状态
const (
	LoadStatusProcessing = "processing"
	LoadStatusOK         = "ok"
	LoadStatusError      = "error"
)

// LoadLog 一次数据集加载的记录
type LoadLog struct {
	ID           string     `json:"id"`
	SourcePath   string     `json:"sourcePath"`
	Sheet        string     `json:"sheet"`
	FileSize     int64      `json:"fileSize"`
	FileHash     string     `json:"fileHash"`
	TotalRows    int        `json:"totalRows"`
	KeptRows     int        `json:"keptRows"`
	DroppedRows  int        `json:"droppedRows"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// LoadResult 加载完成时回填的统计
type LoadResult struct {
	FileSize    int64
	FileHash    string
	TotalRows   int
	KeptRows    int
	DroppedRows int
}

// ErrNoLoadLog 尚无加载记录
var ErrNoLoadLog = errors.New("no load log")

// CreateLoadLog 记录一次加载开始
func (s *Store) CreateLoadLog(id, sourcePath, sheet string, startedAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO load_logs (id, source_path, sheet, status, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, sourcePath, sheet, LoadStatusProcessing, startedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create load log: %w", err)
	}
	return nil
}

// CompleteLoadLog 标记加载成功
func (s *Store) CompleteLoadLog(id string, res LoadResult) error {
	_, err := s.db.Exec(`
		UPDATE load_logs SET
			file_size = ?,
			file_hash = ?,
			total_rows = ?,
			kept_rows = ?,
			dropped_rows = ?,
			status = ?,
			completed_at = ?
		WHERE id = ?
	`, res.FileSize, res.FileHash, res.TotalRows, res.KeptRows, res.DroppedRows, LoadStatusOK, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to complete load log: %w", err)
	}
	return nil
}

// FailLoadLog 标记加载失败
func (s *Store) FailLoadLog(id string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	_, err := s.db.Exec(`
		UPDATE load_logs SET status = ?, error_message = ?, completed_at = ?
		WHERE id = ?
	`, LoadStatusError, msg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update load log: %w", err)
	}
	return nil
}

// LastLoadLog 最近一次加载记录
func (s *Store) LastLoadLog() (*LoadLog, error) {
	logs, err := s.ListLoadLogs(1)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrNoLoadLog
	}
	return &logs[0], nil
}

// ListLoadLogs 按开始时间倒序列出加载记录
func (s *Store) ListLoadLogs(limit int) ([]LoadLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, source_path, sheet, file_size, file_hash, total_rows, kept_rows, dropped_rows,
			status, error_message, started_at, completed_at
		FROM load_logs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query load logs: %w", err)
	}
	defer rows.Close()

	out := make([]LoadLog, 0)
	for rows.Next() {
		var l LoadLog
		var completed sql.NullTime
		if err := rows.Scan(
			&l.ID, &l.SourcePath, &l.Sheet, &l.FileSize, &l.FileHash,
			&l.TotalRows, &l.KeptRows, &l.DroppedRows,
			&l.Status, &l.ErrorMessage, &l.StartedAt, &completed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan load log: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			l.CompletedAt = &t
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
