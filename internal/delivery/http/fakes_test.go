package http

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"designdesk/internal/entity"
	"designdesk/internal/repository"
)

// In-memory repositories mirroring the Mongo implementations closely enough
// to drive the handlers through a real router.

type memMessageRepo struct {
	mu       sync.Mutex
	messages []entity.Message
	seq      int
}

func (m *memMessageRepo) Create(ctx context.Context, message entity.Message) (entity.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	message.Id = fmt.Sprintf("msg-%d", m.seq)
	now := time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	message.Timestamp = now
	message.CreatedAt = now
	message.IsRead = false
	m.messages = append(m.messages, message)
	return message, nil
}

func (m *memMessageRepo) Conversation(ctx context.Context, user1, user2 string) ([]entity.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Message
	for _, msg := range m.messages {
		if betweenUsers(msg, user1, user2) {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (m *memMessageRepo) DeleteConversation(ctx context.Context, user1, user2 string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []entity.Message
	var deleted int64
	for _, msg := range m.messages {
		if betweenUsers(msg, user1, user2) {
			deleted++
			continue
		}
		kept = append(kept, msg)
	}
	m.messages = kept
	return deleted, nil
}

func (m *memMessageRepo) UnreadCounts(ctx context.Context, userId string) ([]entity.UnreadSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bySender := make(map[string]*entity.UnreadSummary)
	var order []string
	for _, msg := range m.messages {
		if msg.ReceiverId != userId || msg.IsRead {
			continue
		}
		summary, ok := bySender[msg.SenderId]
		if !ok {
			summary = &entity.UnreadSummary{UserId: msg.SenderId, SenderName: msg.SenderName}
			bySender[msg.SenderId] = summary
			order = append(order, msg.SenderId)
		}
		summary.UnreadCount++
		if msg.Timestamp.After(summary.LastMessageTimestamp) {
			summary.LastMessageTimestamp = msg.Timestamp
		}
	}
	var out []entity.UnreadSummary
	for _, senderId := range order {
		out = append(out, *bySender[senderId])
	}
	return out, nil
}

func (m *memMessageRepo) MarkConversationRead(ctx context.Context, currentUserId, otherUserId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	var marked int64
	for i := range m.messages {
		msg := &m.messages[i]
		if msg.SenderId == otherUserId && msg.ReceiverId == currentUserId && !msg.IsRead {
			msg.IsRead = true
			msg.ReadAt = &now
			marked++
		}
	}
	return marked, nil
}

func betweenUsers(msg entity.Message, user1, user2 string) bool {
	return (msg.SenderId == user1 && msg.ReceiverId == user2) ||
		(msg.SenderId == user2 && msg.ReceiverId == user1)
}

type memNotificationRepo struct {
	mu            sync.Mutex
	notifications []entity.Notification
	seq           int
}

func (m *memNotificationRepo) ListByUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Notification
	for _, n := range m.notifications {
		if n.UserId == userId {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > repository.ListLimit {
		out = out[:repository.ListLimit]
	}
	return out, nil
}

func (m *memNotificationRepo) Create(ctx context.Context, notification entity.Notification) (entity.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	notification.Id = fmt.Sprintf("n-%d", m.seq)
	notification.IsRead = false
	notification.CreatedAt = time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	m.notifications = append(m.notifications, notification)
	return notification, nil
}

func (m *memNotificationRepo) SetRead(ctx context.Context, notificationId string, isRead bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].Id == notificationId {
			now := time.Now().UTC()
			m.notifications[i].IsRead = isRead
			m.notifications[i].UpdatedAt = &now
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (m *memNotificationRepo) MarkAllRead(ctx context.Context, userId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var modified int64
	for i := range m.notifications {
		if m.notifications[i].UserId == userId && !m.notifications[i].IsRead {
			m.notifications[i].IsRead = true
			modified++
		}
	}
	return modified, nil
}

func (m *memNotificationRepo) Delete(ctx context.Context, notificationId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notifications {
		if m.notifications[i].Id == notificationId {
			m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

type memProjectRepo struct {
	mu       sync.Mutex
	projects map[string]entity.Project
	seq      int
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[string]entity.Project)}
}

func (m *memProjectRepo) Index(ctx context.Context, filter entity.ProjectFilter) ([]entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Project
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProjectRepo) Get(ctx context.Context, projectId string) (entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[projectId]
	if !ok {
		return entity.Project{}, repository.ErrProjectNotFound
	}
	return p, nil
}

func (m *memProjectRepo) Create(ctx context.Context, project entity.Project) (entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	project.Id = fmt.Sprintf("p-%d", m.seq)
	project.CreatedAt = time.Now().UTC()
	project.UpdatedAt = project.CreatedAt
	m.projects[project.Id] = project
	return project, nil
}

func (m *memProjectRepo) Update(ctx context.Context, project entity.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[project.Id]; !ok {
		return repository.ErrProjectNotFound
	}
	project.UpdatedAt = time.Now().UTC()
	m.projects[project.Id] = project
	return nil
}

func (m *memProjectRepo) Delete(ctx context.Context, projectId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[projectId]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(m.projects, projectId)
	return nil
}

type memProjectUpdateRepo struct {
	mu      sync.Mutex
	updates []entity.ProjectUpdate
	seq     int
}

func (m *memProjectUpdateRepo) List(ctx context.Context, projectId, userId string) ([]entity.ProjectUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.ProjectUpdate
	for _, u := range m.updates {
		if projectId != "" && u.ProjectId != projectId {
			continue
		}
		if projectId == "" && userId != "" && u.UserId != userId {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memProjectUpdateRepo) Get(ctx context.Context, updateId string) (entity.ProjectUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.updates {
		if u.Id == updateId {
			return u, nil
		}
	}
	return entity.ProjectUpdate{}, repository.ErrProjectUpdateNotFound
}

func (m *memProjectUpdateRepo) Create(ctx context.Context, update entity.ProjectUpdate) (entity.ProjectUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	update.Id = fmt.Sprintf("pu-%d", m.seq)
	update.CreatedAt = time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	m.updates = append(m.updates, update)
	return update, nil
}

func (m *memProjectUpdateRepo) Update(ctx context.Context, update entity.ProjectUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.updates {
		if m.updates[i].Id == update.Id {
			now := time.Now().UTC()
			update.UpdatedAt = &now
			m.updates[i] = update
			return nil
		}
	}
	return repository.ErrProjectUpdateNotFound
}

func (m *memProjectUpdateRepo) Delete(ctx context.Context, updateId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.updates {
		if m.updates[i].Id == updateId {
			m.updates = append(m.updates[:i], m.updates[i+1:]...)
			return nil
		}
	}
	return repository.ErrProjectUpdateNotFound
}

func (m *memProjectUpdateRepo) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []entity.ProjectUpdate
	var deleted int64
	for _, u := range m.updates {
		if u.ProjectId == projectId {
			deleted++
			continue
		}
		kept = append(kept, u)
	}
	m.updates = kept
	return deleted, nil
}

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]entity.Task
	seq   int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]entity.Task)}
}

func (m *memTaskRepo) Index(ctx context.Context, projectId, assigneeId string) ([]entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Task
	for _, task := range m.tasks {
		if projectId != "" && task.ProjectId != projectId {
			continue
		}
		if projectId == "" && assigneeId != "" && task.AssigneeId != assigneeId {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (m *memTaskRepo) Get(ctx context.Context, taskId string) (entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[taskId]
	if !ok {
		return entity.Task{}, repository.ErrTaskNotFound
	}
	return task, nil
}

func (m *memTaskRepo) Create(ctx context.Context, task entity.Task) (entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	task.Id = fmt.Sprintf("t-%d", m.seq)
	task.CreatedAt = time.Now().UTC()
	m.tasks[task.Id] = task
	return task, nil
}

func (m *memTaskRepo) Update(ctx context.Context, task entity.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[task.Id]; !ok {
		return repository.ErrTaskNotFound
	}
	m.tasks[task.Id] = task
	return nil
}

func (m *memTaskRepo) Delete(ctx context.Context, taskId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[taskId]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.tasks, taskId)
	return nil
}

func (m *memTaskRepo) DeleteByProject(ctx context.Context, projectId string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var deleted int64
	for id, task := range m.tasks {
		if task.ProjectId == projectId {
			delete(m.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]entity.User)}
}

func (m *memUserRepo) Get(ctx context.Context, userId string) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userId]
	if !ok {
		return entity.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, repository.ErrUserNotFound
}

func (m *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *memUserRepo) Create(ctx context.Context, user entity.User) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	user.Id = fmt.Sprintf("user-%d", m.seq)
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.users[user.Id] = user
	return user, nil
}

func (m *memUserRepo) Update(ctx context.Context, user entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Id]; !ok {
		return repository.ErrUserNotFound
	}
	m.users[user.Id] = user
	return nil
}

func (m *memUserRepo) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.User
	for _, user := range m.users {
		if role == "" || user.Role == role {
			out = append(out, user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]entity.RefreshToken
}

func newMemRefreshTokenRepo() *memRefreshTokenRepo {
	return &memRefreshTokenRepo{tokens: make(map[string]entity.RefreshToken)}
}

func (m *memRefreshTokenRepo) Create(ctx context.Context, refreshToken entity.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	refreshToken.CreatedAt = time.Now().UTC()
	m.tokens[refreshToken.Token] = refreshToken
	return nil
}

func (m *memRefreshTokenRepo) GetByToken(ctx context.Context, token string) (entity.RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.tokens[token]
	if !ok {
		return entity.RefreshToken{}, repository.ErrUserNotFound
	}
	return stored, nil
}

func (m *memRefreshTokenRepo) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.tokens[token]
	if !ok {
		return nil
	}
	now := time.Now().UTC()
	stored.IsRevoked = true
	stored.RevokedAt = &now
	m.tokens[token] = stored
	return nil
}

func (m *memRefreshTokenRepo) RevokeAllByUserId(ctx context.Context, userId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for token, stored := range m.tokens {
		if stored.UserId == userId {
			stored.IsRevoked = true
			stored.RevokedAt = &now
			m.tokens[token] = stored
		}
	}
	return nil
}

func (m *memRefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for token, stored := range m.tokens {
		if now.After(stored.ExpiresAt) {
			delete(m.tokens, token)
		}
	}
	return nil
}
