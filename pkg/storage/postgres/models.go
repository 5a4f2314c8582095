package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/storage"
)

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullID converts an optional domain ID (a uuid wrapper) to its nullable
// column representation and back.
func nullID[T ~[16]byte](id *T) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func idOf[T ~[16]byte](n uuid.NullUUID) *T {
	if !n.Valid {
		return nil
	}

	id := T(n.UUID)

	return &id
}

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Email        string `db:"email"`
	DisplayName  string `db:"display_name"`
	PasswordHash string `db:"password_hash"`

	Role  string `db:"role"`
	State string `db:"state"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		DisplayName:  p.DisplayName,
		PasswordHash: p.PasswordHash,
		Role:         domain.SystemRole(p.Role),
		State:        domain.UserState(p.State),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		State:        string(user.State),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    nullTime(user.UpdatedAt),
		DeletedAt:    nullTime(user.DeletedAt),
	}
}

type PgRefreshToken struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	TokenHash string `db:"token_hash"`

	ExpiresAt time.Time    `db:"expires_at"`
	RevokedAt sql.NullTime `db:"revoked_at" goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
}

func (p *PgRefreshToken) ToDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        domain.RefreshTokenID(p.ID),
		UserID:    domain.UserID(p.UserID),
		TokenHash: p.TokenHash,
		ExpiresAt: p.ExpiresAt,
		RevokedAt: p.RevokedAt.Time,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgRefreshToken) FromDomain(token domain.RefreshToken) {
	*p = PgRefreshToken{
		ID:        uuid.UUID(token.ID),
		UserID:    uuid.UUID(token.UserID),
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		RevokedAt: nullTime(token.RevokedAt),
		CreatedAt: token.CreatedAt,
	}
}

type PgGroup struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Type        string         `db:"type"`
	Currency    string         `db:"currency"`

	AllowProposals bool `db:"allow_proposals"`

	CreatedBy uuid.UUID `db:"created_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgGroup) ToDomain() *domain.Group {
	return &domain.Group{
		ID:             domain.GroupID(p.ID),
		Name:           p.Name,
		Description:    p.Description.String,
		Type:           domain.GroupType(p.Type),
		Currency:       p.Currency,
		AllowProposals: p.AllowProposals,
		CreatedBy:      domain.UserID(p.CreatedBy),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
		DeletedAt:      p.DeletedAt.Time,
	}
}

func (p *PgGroup) FromDomain(group domain.Group) {
	*p = PgGroup{
		ID:             uuid.UUID(group.ID),
		Name:           group.Name,
		Description:    nullString(group.Description),
		Type:           string(group.Type),
		Currency:       group.Currency,
		AllowProposals: group.AllowProposals,
		CreatedBy:      uuid.UUID(group.CreatedBy),
		CreatedAt:      group.CreatedAt,
		UpdatedAt:      nullTime(group.UpdatedAt),
		DeletedAt:      nullTime(group.DeletedAt),
	}
}

type PgMembership struct {
	GroupID uuid.UUID `db:"group_id"`
	UserID  uuid.UUID `db:"user_id"`

	Role string `db:"role"`

	JoinedAt time.Time `db:"joined_at" goqu:"skipinsert"`
}

func (p *PgMembership) ToDomain() *domain.Membership {
	return &domain.Membership{
		GroupID:  domain.GroupID(p.GroupID),
		UserID:   domain.UserID(p.UserID),
		Role:     domain.GroupRole(p.Role),
		JoinedAt: p.JoinedAt,
	}
}

func (p *PgMembership) FromDomain(m domain.Membership) {
	*p = PgMembership{
		GroupID:  uuid.UUID(m.GroupID),
		UserID:   uuid.UUID(m.UserID),
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// PgGroupMember joins a membership row with public profile columns of the
// member.
type PgGroupMember struct {
	PgMembership

	Email       string `db:"email"`
	DisplayName string `db:"display_name"`
}

func (p *PgGroupMember) ToStorage() storage.GroupMember {
	return storage.GroupMember{
		Membership:  *p.PgMembership.ToDomain(),
		Email:       p.Email,
		DisplayName: p.DisplayName,
	}
}

type PgInvitation struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Code string `db:"code"`
	Role string `db:"role"`

	CreatedBy uuid.UUID `db:"created_by"`
	ExpiresAt time.Time `db:"expires_at"`

	UsedBy uuid.NullUUID `db:"used_by" goqu:"skipinsert"`
	UsedAt sql.NullTime  `db:"used_at" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgInvitation) ToDomain() *domain.Invitation {
	return &domain.Invitation{
		ID:        domain.InvitationID(p.ID),
		GroupID:   domain.GroupID(p.GroupID),
		Code:      p.Code,
		Role:      domain.GroupRole(p.Role),
		CreatedBy: domain.UserID(p.CreatedBy),
		ExpiresAt: p.ExpiresAt,
		UsedBy:    idOf[domain.UserID](p.UsedBy),
		UsedAt:    p.UsedAt.Time,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgInvitation) FromDomain(inv domain.Invitation) {
	*p = PgInvitation{
		ID:        uuid.UUID(inv.ID),
		GroupID:   uuid.UUID(inv.GroupID),
		Code:      inv.Code,
		Role:      string(inv.Role),
		CreatedBy: uuid.UUID(inv.CreatedBy),
		ExpiresAt: inv.ExpiresAt,
		UsedBy:    nullID(inv.UsedBy),
		UsedAt:    nullTime(inv.UsedAt),
		CreatedAt: inv.CreatedAt,
	}
}

type PgTask struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Type        string         `db:"type"`
	Priority    string         `db:"priority"`

	Points int64 `db:"points"`

	Status     string        `db:"status"`
	AssigneeID uuid.NullUUID `db:"assignee_id"`

	DueAt sql.NullTime `db:"due_at"`

	Recurrence    string        `db:"recurrence"`
	RecurEndAt    sql.NullTime  `db:"recur_end_at"`
	LastSpawnedAt sql.NullTime  `db:"last_spawned_at" goqu:"skipinsert"`
	TemplateID    uuid.NullUUID `db:"template_id"`

	CreatedBy uuid.UUID `db:"created_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgTask) ToDomain() *domain.Task {
	return &domain.Task{
		ID:            domain.TaskID(p.ID),
		GroupID:       domain.GroupID(p.GroupID),
		Title:         p.Title,
		Description:   p.Description.String,
		Type:          domain.TaskType(p.Type),
		Priority:      domain.TaskPriority(p.Priority),
		Points:        p.Points,
		Status:        domain.TaskStatus(p.Status),
		AssigneeID:    idOf[domain.UserID](p.AssigneeID),
		DueAt:         p.DueAt.Time,
		Recurrence:    domain.Recurrence(p.Recurrence),
		RecurEndAt:    p.RecurEndAt.Time,
		LastSpawnedAt: p.LastSpawnedAt.Time,
		TemplateID:    idOf[domain.TaskID](p.TemplateID),
		CreatedBy:     domain.UserID(p.CreatedBy),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgTask) FromDomain(task domain.Task) {
	*p = PgTask{
		ID:            uuid.UUID(task.ID),
		GroupID:       uuid.UUID(task.GroupID),
		Title:         task.Title,
		Description:   nullString(task.Description),
		Type:          string(task.Type),
		Priority:      string(task.Priority),
		Points:        task.Points,
		Status:        string(task.Status),
		AssigneeID:    nullID(task.AssigneeID),
		DueAt:         nullTime(task.DueAt),
		Recurrence:    string(task.Recurrence),
		RecurEndAt:    nullTime(task.RecurEndAt),
		LastSpawnedAt: nullTime(task.LastSpawnedAt),
		TemplateID:    nullID(task.TemplateID),
		CreatedBy:     uuid.UUID(task.CreatedBy),
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     nullTime(task.UpdatedAt),
		DeletedAt:     nullTime(task.DeletedAt),
	}
}

func domainTasksToPg(tasks []domain.Task) []PgTask {
	out := make([]PgTask, len(tasks))
	for i := range out {
		out[i].FromDomain(tasks[i])
	}

	return out
}

func pgTasksToDomain(tasks []PgTask) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, *tasks[i].ToDomain())
	}

	return out
}

type PgCompletion struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	TaskID uuid.UUID `db:"task_id"`
	UserID uuid.UUID `db:"user_id"`

	Status string `db:"status"`

	StartedAt   time.Time    `db:"started_at"`
	SubmittedAt sql.NullTime `db:"submitted_at" goqu:"skipinsert"`
	ReviewedAt  sql.NullTime `db:"reviewed_at" goqu:"skipinsert"`

	ReviewerID uuid.NullUUID  `db:"reviewer_id" goqu:"skipinsert"`
	ReviewNote sql.NullString `db:"review_note" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCompletion) ToDomain() *domain.Completion {
	return &domain.Completion{
		ID:          domain.CompletionID(p.ID),
		TaskID:      domain.TaskID(p.TaskID),
		UserID:      domain.UserID(p.UserID),
		Status:      domain.CompletionStatus(p.Status),
		StartedAt:   p.StartedAt,
		SubmittedAt: p.SubmittedAt.Time,
		ReviewedAt:  p.ReviewedAt.Time,
		ReviewerID:  idOf[domain.UserID](p.ReviewerID),
		ReviewNote:  p.ReviewNote.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgCompletion) FromDomain(c domain.Completion) {
	*p = PgCompletion{
		ID:          uuid.UUID(c.ID),
		TaskID:      uuid.UUID(c.TaskID),
		UserID:      uuid.UUID(c.UserID),
		Status:      string(c.Status),
		StartedAt:   c.StartedAt,
		SubmittedAt: nullTime(c.SubmittedAt),
		ReviewedAt:  nullTime(c.ReviewedAt),
		ReviewerID:  nullID(c.ReviewerID),
		ReviewNote:  nullString(c.ReviewNote),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   nullTime(c.UpdatedAt),
	}
}

type PgAccount struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID  uuid.UUID `db:"user_id"`
	GroupID uuid.UUID `db:"group_id"`

	Balance int64 `db:"balance"`
	Earned  int64 `db:"earned"`

	Currency string `db:"currency"`

	LastTransactionAt sql.NullTime `db:"last_transaction_at" goqu:"skipinsert"`
	CreatedAt         time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt         sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:                domain.AccountID(p.ID),
		UserID:            domain.UserID(p.UserID),
		GroupID:           domain.GroupID(p.GroupID),
		Balance:           p.Balance,
		Earned:            p.Earned,
		Currency:          p.Currency,
		LastTransactionAt: p.LastTransactionAt.Time,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}
}

func (p *PgAccount) FromDomain(a domain.Account) {
	*p = PgAccount{
		ID:                uuid.UUID(a.ID),
		UserID:            uuid.UUID(a.UserID),
		GroupID:           uuid.UUID(a.GroupID),
		Balance:           a.Balance,
		Earned:            a.Earned,
		Currency:          a.Currency,
		LastTransactionAt: nullTime(a.LastTransactionAt),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         nullTime(a.UpdatedAt),
	}
}

type PgTransaction struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	AccountID uuid.UUID `db:"account_id"`

	Type         string `db:"type"`
	Amount       int64  `db:"amount"`
	BalanceAfter int64  `db:"balance_after"`

	Description sql.NullString `db:"description"`

	CompletionID uuid.NullUUID `db:"completion_id"`
	RedemptionID uuid.NullUUID `db:"redemption_id"`
	ActorID      uuid.NullUUID `db:"actor_id"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTransaction) ToDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:           domain.TransactionID(p.ID),
		AccountID:    domain.AccountID(p.AccountID),
		Type:         domain.TransactionType(p.Type),
		Amount:       p.Amount,
		BalanceAfter: p.BalanceAfter,
		Description:  p.Description.String,
		CompletionID: idOf[domain.CompletionID](p.CompletionID),
		RedemptionID: idOf[domain.RedemptionID](p.RedemptionID),
		ActorID:      idOf[domain.UserID](p.ActorID),
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgTransaction) FromDomain(t domain.Transaction) {
	*p = PgTransaction{
		ID:           uuid.UUID(t.ID),
		AccountID:    uuid.UUID(t.AccountID),
		Type:         string(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  nullString(t.Description),
		CompletionID: nullID(t.CompletionID),
		RedemptionID: nullID(t.RedemptionID),
		ActorID:      nullID(t.ActorID),
		CreatedAt:    t.CreatedAt,
	}
}

func pgTransactionsToDomain(txs []PgTransaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for i := range txs {
		out = append(out, *txs[i].ToDomain())
	}

	return out
}

type PgRule struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Name string `db:"name"`

	TaskID   uuid.NullUUID  `db:"task_id"`
	TaskType sql.NullString `db:"task_type"`

	Amount int64 `db:"amount"`

	Condition     string `db:"condition"`
	MinHoursEarly int    `db:"min_hours_early"`

	Active bool `db:"active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgRule) ToDomain() *domain.Rule {
	var taskType *domain.TaskType
	if p.TaskType.Valid {
		t := domain.TaskType(p.TaskType.String)
		taskType = &t
	}

	return &domain.Rule{
		ID:            domain.RuleID(p.ID),
		GroupID:       domain.GroupID(p.GroupID),
		Name:          p.Name,
		TaskID:        idOf[domain.TaskID](p.TaskID),
		TaskType:      taskType,
		Amount:        p.Amount,
		Condition:     domain.RuleCondition(p.Condition),
		MinHoursEarly: p.MinHoursEarly,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
		DeletedAt:     p.DeletedAt.Time,
	}
}

func (p *PgRule) FromDomain(r domain.Rule) {
	var taskType sql.NullString
	if r.TaskType != nil {
		taskType = sql.NullString{String: string(*r.TaskType), Valid: true}
	}

	*p = PgRule{
		ID:            uuid.UUID(r.ID),
		GroupID:       uuid.UUID(r.GroupID),
		Name:          r.Name,
		TaskID:        nullID(r.TaskID),
		TaskType:      taskType,
		Amount:        r.Amount,
		Condition:     string(r.Condition),
		MinHoursEarly: r.MinHoursEarly,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     nullTime(r.UpdatedAt),
		DeletedAt:     nullTime(r.DeletedAt),
	}
}

func pgRulesToDomain(rules []PgRule) []domain.Rule {
	out := make([]domain.Rule, 0, len(rules))
	for i := range rules {
		out = append(out, *rules[i].ToDomain())
	}

	return out
}

type PgReward struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`

	Cost int64 `db:"cost"`

	Stock        sql.NullInt32 `db:"stock"`
	PerUserLimit sql.NullInt32 `db:"per_user_limit"`

	Active bool `db:"active"`

	ValidFrom  sql.NullTime `db:"valid_from"`
	ValidUntil sql.NullTime `db:"valid_until"`

	CreatedBy uuid.UUID `db:"created_by"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}

	return sql.NullInt32{Int32: int32(*v), Valid: true} //nolint: gosec
}

func intOf(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}

	v := int(n.Int32)

	return &v
}

func (p *PgReward) ToDomain() *domain.Reward {
	return &domain.Reward{
		ID:           domain.RewardID(p.ID),
		GroupID:      domain.GroupID(p.GroupID),
		Name:         p.Name,
		Description:  p.Description.String,
		Cost:         p.Cost,
		Stock:        intOf(p.Stock),
		PerUserLimit: intOf(p.PerUserLimit),
		Active:       p.Active,
		ValidFrom:    p.ValidFrom.Time,
		ValidUntil:   p.ValidUntil.Time,
		CreatedBy:    domain.UserID(p.CreatedBy),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgReward) FromDomain(r domain.Reward) {
	*p = PgReward{
		ID:           uuid.UUID(r.ID),
		GroupID:      uuid.UUID(r.GroupID),
		Name:         r.Name,
		Description:  nullString(r.Description),
		Cost:         r.Cost,
		Stock:        nullInt(r.Stock),
		PerUserLimit: nullInt(r.PerUserLimit),
		Active:       r.Active,
		ValidFrom:    nullTime(r.ValidFrom),
		ValidUntil:   nullTime(r.ValidUntil),
		CreatedBy:    uuid.UUID(r.CreatedBy),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    nullTime(r.UpdatedAt),
		DeletedAt:    nullTime(r.DeletedAt),
	}
}

type PgRedemption struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	RewardID uuid.UUID `db:"reward_id"`
	GroupID  uuid.UUID `db:"group_id"`
	UserID   uuid.UUID `db:"user_id"`

	Spent int64 `db:"spent"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgRedemption) ToDomain() *domain.Redemption {
	return &domain.Redemption{
		ID:        domain.RedemptionID(p.ID),
		RewardID:  domain.RewardID(p.RewardID),
		GroupID:   domain.GroupID(p.GroupID),
		UserID:    domain.UserID(p.UserID),
		Spent:     p.Spent,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgRedemption) FromDomain(r domain.Redemption) {
	*p = PgRedemption{
		ID:        uuid.UUID(r.ID),
		RewardID:  uuid.UUID(r.RewardID),
		GroupID:   uuid.UUID(r.GroupID),
		UserID:    uuid.UUID(r.UserID),
		Spent:     r.Spent,
		CreatedAt: r.CreatedAt,
	}
}

type PgLevel struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Name           string `db:"name"`
	Rank           int    `db:"rank"`
	RequiredPoints int64  `db:"required_points"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLevel) ToDomain() *domain.Level {
	return &domain.Level{
		ID:             domain.LevelID(p.ID),
		GroupID:        domain.GroupID(p.GroupID),
		Name:           p.Name,
		Rank:           p.Rank,
		RequiredPoints: p.RequiredPoints,
		CreatedAt:      p.CreatedAt,
		DeletedAt:      p.DeletedAt.Time,
	}
}

func (p *PgLevel) FromDomain(l domain.Level) {
	*p = PgLevel{
		ID:             uuid.UUID(l.ID),
		GroupID:        uuid.UUID(l.GroupID),
		Name:           l.Name,
		Rank:           l.Rank,
		RequiredPoints: l.RequiredPoints,
		CreatedAt:      l.CreatedAt,
		DeletedAt:      nullTime(l.DeletedAt),
	}
}

type PgUserLevel struct {
	UserID  uuid.UUID `db:"user_id"`
	GroupID uuid.UUID `db:"group_id"`
	LevelID uuid.UUID `db:"level_id"`

	AchievedAt time.Time `db:"achieved_at" goqu:"skipinsert"`
}

func (p *PgUserLevel) ToDomain() *domain.UserLevel {
	return &domain.UserLevel{
		UserID:     domain.UserID(p.UserID),
		GroupID:    domain.GroupID(p.GroupID),
		LevelID:    domain.LevelID(p.LevelID),
		AchievedAt: p.AchievedAt,
	}
}

type PgBadge struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	GroupID uuid.UUID `db:"group_id"`

	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`

	Condition string `db:"condition"`
	Threshold int64  `db:"threshold"`

	Active bool `db:"active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgBadge) ToDomain() *domain.Badge {
	return &domain.Badge{
		ID:          domain.BadgeID(p.ID),
		GroupID:     domain.GroupID(p.GroupID),
		Name:        p.Name,
		Description: p.Description.String,
		Condition:   domain.BadgeCondition(p.Condition),
		Threshold:   p.Threshold,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgBadge) FromDomain(b domain.Badge) {
	*p = PgBadge{
		ID:          uuid.UUID(b.ID),
		GroupID:     uuid.UUID(b.GroupID),
		Name:        b.Name,
		Description: nullString(b.Description),
		Condition:   string(b.Condition),
		Threshold:   b.Threshold,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt,
		DeletedAt:   nullTime(b.DeletedAt),
	}
}

type PgUserBadge struct {
	BadgeID uuid.UUID `db:"badge_id"`
	UserID  uuid.UUID `db:"user_id"`
	GroupID uuid.UUID `db:"group_id"`

	AwardedAt time.Time `db:"awarded_at" goqu:"skipinsert"`
}

func (p *PgUserBadge) ToDomain() *domain.UserBadge {
	return &domain.UserBadge{
		BadgeID:   domain.BadgeID(p.BadgeID),
		UserID:    domain.UserID(p.UserID),
		GroupID:   domain.GroupID(p.GroupID),
		AwardedAt: p.AwardedAt,
	}
}

type PgRatingSnapshot struct {
	GroupID uuid.UUID `db:"group_id"`
	UserID  uuid.UUID `db:"user_id"`

	Period string `db:"period"`
	Points int64  `db:"points"`
	Rank   int    `db:"rank"`

	TakenAt time.Time `db:"taken_at"`
}

func (p *PgRatingSnapshot) ToDomain() *domain.RatingSnapshot {
	return &domain.RatingSnapshot{
		GroupID: domain.GroupID(p.GroupID),
		UserID:  domain.UserID(p.UserID),
		Period:  domain.RatingPeriod(p.Period),
		Points:  p.Points,
		Rank:    p.Rank,
		TakenAt: p.TakenAt,
	}
}

func (p *PgRatingSnapshot) FromDomain(s domain.RatingSnapshot) {
	*p = PgRatingSnapshot{
		GroupID: uuid.UUID(s.GroupID),
		UserID:  uuid.UUID(s.UserID),
		Period:  string(s.Period),
		Points:  s.Points,
		Rank:    s.Rank,
		TakenAt: s.TakenAt,
	}
}

type PgNotification struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Type  string         `db:"type"`
	Title string         `db:"title"`
	Body  sql.NullString `db:"body"`

	GroupID uuid.NullUUID `db:"group_id"`

	ReadAt sql.NullTime `db:"read_at" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:        domain.NotificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Type:      domain.NotificationType(p.Type),
		Title:     p.Title,
		Body:      p.Body.String,
		GroupID:   idOf[domain.GroupID](p.GroupID),
		ReadAt:    p.ReadAt.Time,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:        uuid.UUID(n.ID),
		UserID:    uuid.UUID(n.UserID),
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      nullString(n.Body),
		GroupID:   nullID(n.GroupID),
		ReadAt:    nullTime(n.ReadAt),
		CreatedAt: n.CreatedAt,
	}
}

func domainNotificationsToPg(ns []domain.Notification) []PgNotification {
	out := make([]PgNotification, len(ns))
	for i := range out {
		out[i].FromDomain(ns[i])
	}

	return out
}

func pgNotificationsToDomain(ns []PgNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(ns))
	for i := range ns {
		out = append(out, *ns[i].ToDomain())
	}

	return out
}
