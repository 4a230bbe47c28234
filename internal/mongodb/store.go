// Package mongodb stores parsed resumes and interview sessions in MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// Default collection names.
const (
	DefaultResumesCollection  = "resumes"
	DefaultSessionsCollection = "interview_sessions"
	DefaultListLimit          = 50
)

// Options names the database and collections to use.
type Options struct {
	Database           string
	ResumesCollection  string
	SessionsCollection string
}

// Store is a MongoDB-backed resume and session repository.
type Store struct {
	client   *mongo.Client
	resumes  *mongo.Collection
	sessions *mongo.Collection
}

type resumeDoc struct {
	ID        string                 `bson:"_id"`
	Filename  string                 `bson:"filename"`
	SessionID string                 `bson:"session_id"`
	Profile   types.CandidateProfile `bson:"parsed_data"`
	CreatedAt time.Time              `bson:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

type sessionDoc struct {
	SessionID      string                    `bson:"_id"`
	ResumeID       string                    `bson:"resume_id"`
	CandidateName  string                    `bson:"candidate_name"`
	CandidateEmail string                    `bson:"candidate_email"`
	Profile        types.CandidateProfile    `bson:"profile"`
	Questions      []types.GeneratedQuestion `bson:"questions"`
	Responses      []types.ResponseRecord    `bson:"responses"`
	Analysis       *types.InterviewAnalysis  `bson:"analysis,omitempty"`
	Status         string                    `bson:"status"`
	CreatedAt      time.Time                 `bson:"created_at"`
	UpdatedAt      time.Time                 `bson:"updated_at"`
}

// Connect opens a client, verifies it with a ping and returns a Store.
func Connect(ctx context.Context, uri string, opts Options) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	if opts.ResumesCollection == "" {
		opts.ResumesCollection = DefaultResumesCollection
	}
	if opts.SessionsCollection == "" {
		opts.SessionsCollection = DefaultSessionsCollection
	}
	db := client.Database(opts.Database)
	return &Store{
		client:   client,
		resumes:  db.Collection(opts.ResumesCollection),
		sessions: db.Collection(opts.SessionsCollection),
	}, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the repository.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.resumes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "parsed_data.email", Value: 1}}},
		{Keys: bson.D{{Key: "parsed_data.skills", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create resume indexes: %w", err)
	}

	_, err = s.sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "resume_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}

// SaveResume upserts a resume record. A missing ID is generated.
func (s *Store) SaveResume(ctx context.Context, rec *types.ResumeRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	doc := resumeDoc{
		ID:        rec.ID,
		Filename:  rec.Filename,
		SessionID: rec.SessionID,
		Profile:   rec.Profile,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	_, err := s.resumes.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume returns the resume with id, or nil.
func (s *Store) GetResume(ctx context.Context, id string) (*types.ResumeRecord, error) {
	return s.findOneResume(ctx, bson.M{"_id": id})
}

// FindResumeByEmail returns the newest resume with a case-insensitive exact
// email match, or nil.
func (s *Store) FindResumeByEmail(ctx context.Context, email string) (*types.ResumeRecord, error) {
	filter := bson.M{"parsed_data.email": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(email) + "$",
		"$options": "i",
	}}
	return s.findOneResume(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (s *Store) findOneResume(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*types.ResumeRecord, error) {
	var doc resumeDoc
	if err := s.resumes.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	rec := doc.record()
	return &rec, nil
}

// ListResumes returns the newest resumes first.
func (s *Store) ListResumes(ctx context.Context, limit int) ([]types.ResumeRecord, error) {
	return s.SearchResumes(ctx, types.ResumeQuery{Limit: limit})
}

// SearchResumes filters by name and email regex and by any of the skills.
func (s *Store) SearchResumes(ctx context.Context, q types.ResumeQuery) ([]types.ResumeRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.resumes.Find(ctx, SearchFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	records := []types.ResumeRecord{}
	for cur.Next(ctx) {
		var doc resumeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode resume: %w", err)
		}
		records = append(records, doc.record())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	return records, nil
}

// SearchFilter builds the resume query document for q.
func SearchFilter(q types.ResumeQuery) bson.M {
	filter := bson.M{}
	if q.Name != "" {
		filter["parsed_data.name"] = bson.M{"$regex": q.Name, "$options": "i"}
	}
	if q.Email != "" {
		filter["parsed_data.email"] = bson.M{"$regex": q.Email, "$options": "i"}
	}
	skills := make([]string, 0, len(q.Skills))
	for _, sk := range q.Skills {
		if sk = strings.ToLower(strings.TrimSpace(sk)); sk != "" {
			skills = append(skills, sk)
		}
	}
	if len(skills) > 0 {
		filter["parsed_data.skills"] = bson.M{"$in": skills}
	}
	return filter
}

// CreateSession inserts a new interview session.
func (s *Store) CreateSession(ctx context.Context, sess *types.InterviewSession) error {
	now := time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now
	if sess.Status == "" {
		sess.Status = types.SessionStarted
	}

	if _, err := s.sessions.InsertOne(ctx, newSessionDoc(sess)); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession returns the session with id, or nil.
func (s *Store) GetSession(ctx context.Context, id string) (*types.InterviewSession, error) {
	var doc sessionDoc
	if err := s.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	sess := doc.session()
	return &sess, nil
}

// UpdateSession replaces the mutable fields of an existing session.
func (s *Store) UpdateSession(ctx context.Context, sess *types.InterviewSession) error {
	sess.UpdatedAt = time.Now().UTC()
	doc := newSessionDoc(sess)

	set := bson.M{
		"questions":  doc.Questions,
		"responses":  doc.Responses,
		"status":     doc.Status,
		"updated_at": doc.UpdatedAt,
	}
	if doc.Analysis != nil {
		set["analysis"] = doc.Analysis
	}
	res, err := s.sessions.UpdateByID(ctx, sess.SessionID, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("session not found: %s", sess.SessionID)
	}
	return nil
}

func (d resumeDoc) record() types.ResumeRecord {
	return types.ResumeRecord{
		ID:        d.ID,
		Filename:  d.Filename,
		SessionID: d.SessionID,
		Profile:   d.Profile,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newSessionDoc(s *types.InterviewSession) sessionDoc {
	questions := s.Questions
	if questions == nil {
		questions = []types.GeneratedQuestion{}
	}
	responses := s.Responses
	if responses == nil {
		responses = []types.ResponseRecord{}
	}
	return sessionDoc{
		SessionID:      s.SessionID,
		ResumeID:       s.ResumeID,
		CandidateName:  s.CandidateName,
		CandidateEmail: s.CandidateEmail,
		Profile:        s.Profile,
		Questions:      questions,
		Responses:      responses,
		Analysis:       s.Analysis,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (d sessionDoc) session() types.InterviewSession {
	return types.InterviewSession{
		SessionID:      d.SessionID,
		ResumeID:       d.ResumeID,
		CandidateName:  d.CandidateName,
		CandidateEmail: d.CandidateEmail,
		Profile:        d.Profile,
		Questions:      d.Questions,
		Responses:      d.Responses,
		Analysis:       d.Analysis,
		Status:         types.SessionStatus(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
