package handler

import (
	"time"

	"afternote/internal/legacy/models"
)

type PageResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

type MediaResponse struct {
	ID        string `json:"id"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

type TimeLetterResponse struct {
	ID                   string          `json:"id"`
	TimeLetterReceiverID string          `json:"timeLetterReceiverId"`
	Title                string          `json:"title"`
	Content              string          `json:"content"`
	SendAt               *string         `json:"sendAt"`
	Status               string          `json:"status"`
	SenderName           string          `json:"senderName"`
	DeliveredAt          *string         `json:"deliveredAt"`
	CreatedAt            string          `json:"createdAt"`
	MediaList            []MediaResponse `json:"mediaList"`
	IsRead               bool            `json:"isRead"`
}

type MindRecordSummaryResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	RecordDate string `json:"recordDate"`
	SenderName string `json:"senderName"`
	CreatedAt  string `json:"createdAt"`
}

type ImageResponse struct {
	ID        string `json:"id"`
	MediaType string `json:"mediaType"`
	ImageURL  string `json:"imageUrl"`
}

type MindRecordResponse struct {
	MindRecordSummaryResponse
	Content         string          `json:"content"`
	QuestionContent *string         `json:"questionContent"`
	Category        *string         `json:"category"`
	ImageList       []ImageResponse `json:"imageList"`
}

type AfternoteSummaryResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	LeaveMessage *string `json:"leaveMessage"`
	SenderName   string  `json:"senderName"`
	CreatedAt    string  `json:"createdAt"`
}

type SongResponse struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	CoverURL *string `json:"coverUrl"`
}

type MemorialVideoResponse struct {
	VideoURL     *string `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

type PlaylistResponse struct {
	Atmosphere    *string                `json:"atmosphere"`
	Songs         []SongResponse         `json:"songs"`
	MemorialVideo *MemorialVideoResponse `json:"memorialVideo"`
}

type AfternoteResponse struct {
	AfternoteSummaryResponse
	ProcessMethod *string           `json:"processMethod"`
	Actions       []string          `json:"actions"`
	Playlist      *PlaylistResponse `json:"playlist"`
}

type OverviewResponse struct {
	TimeLetterCount       int `json:"timeLetterCount"`
	UnreadTimeLetterCount int `json:"unreadTimeLetterCount"`
	MindRecordCount       int `json:"mindRecordCount"`
	AfternoteCount        int `json:"afternoteCount"`
}

func toPage[M any, R any](page *models.Page[M], convert func(M) R) PageResponse[R] {
	items := make([]R, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, convert(m))
	}
	return PageResponse[R]{Items: items, TotalCount: page.TotalCount}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func toTimeLetterResponse(l *models.TimeLetter) TimeLetterResponse {
	media := make([]MediaResponse, 0, len(l.Media))
	for _, m := range l.Media {
		media = append(media, MediaResponse{ID: m.ID.String(), MediaType: m.MediaType, MediaURL: m.MediaURL})
	}
	return TimeLetterResponse{
		ID:                   l.ID.String(),
		TimeLetterReceiverID: l.DeliveryID.String(),
		Title:                l.Title,
		Content:              l.Content,
		SendAt:               formatTimePtr(l.SendAt),
		Status:               l.Status,
		SenderName:           l.SenderName,
		DeliveredAt:          formatTimePtr(l.DeliveredAt),
		CreatedAt:            formatTime(l.CreatedAt),
		MediaList:            media,
		IsRead:               l.IsRead(),
	}
}

func toMindRecordSummary(r *models.MindRecord) MindRecordSummaryResponse {
	return MindRecordSummaryResponse{
		ID:         r.ID.String(),
		Type:       r.Type,
		Title:      r.Title,
		RecordDate: r.RecordDate.String(),
		SenderName: r.SenderName,
		CreatedAt:  formatTime(r.CreatedAt),
	}
}

func toMindRecordResponse(r *models.MindRecord) MindRecordResponse {
	images := make([]ImageResponse, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, ImageResponse{ID: img.ID.String(), MediaType: img.MediaType, ImageURL: img.ImageURL})
	}
	return MindRecordResponse{
		MindRecordSummaryResponse: toMindRecordSummary(r),
		Content:                   r.Content,
		QuestionContent:           r.QuestionContent,
		Category:                  r.Category,
		ImageList:                 images,
	}
}

func toAfternoteSummary(n *models.Afternote) AfternoteSummaryResponse {
	return AfternoteSummaryResponse{
		ID:           n.ID.String(),
		Title:        n.Title,
		Category:     n.Category,
		LeaveMessage: n.LeaveMessage,
		SenderName:   n.SenderName,
		CreatedAt:    formatTime(n.CreatedAt),
	}
}

func toAfternoteResponse(n *models.Afternote) AfternoteResponse {
	resp := AfternoteResponse{
		AfternoteSummaryResponse: toAfternoteSummary(n),
		ProcessMethod:            n.ProcessMethod,
		Actions:                  n.Actions,
	}
	if resp.Actions == nil {
		resp.Actions = []string{}
	}
	if n.Atmosphere != nil || len(n.Songs) > 0 || n.MemorialVideoURL != nil {
		songs := make([]SongResponse, 0, len(n.Songs))
		for _, song := range n.Songs {
			songs = append(songs, SongResponse{Title: song.Title, Artist: song.Artist, CoverURL: song.CoverURL})
		}
		playlist := &PlaylistResponse{Atmosphere: n.Atmosphere, Songs: songs}
		if n.MemorialVideoURL != nil {
			playlist.MemorialVideo = &MemorialVideoResponse{
				VideoURL:     n.MemorialVideoURL,
				ThumbnailURL: n.MemorialThumbnailURL,
			}
		}
		resp.Playlist = playlist
	}
	return resp
}

func toOverviewResponse(o *models.Overview) OverviewResponse {
	return OverviewResponse{
		TimeLetterCount:       o.TimeLetters,
		UnreadTimeLetterCount: o.UnreadTimeLetters,
		MindRecordCount:       o.MindRecords,
		AfternoteCount:        o.Afternotes,
	}
}
