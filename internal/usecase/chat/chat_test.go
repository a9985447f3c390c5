package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Provider{},
		&models.ChatRoom{},
		&models.ChatRoomParticipant{},
		&models.Message{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newChatRepo(t *testing.T) (*gorm.DB, *repository.ChatGormRepository) {
	t.Helper()
	db := setupTestDB(t)
	return db, repository.NewChatGormRepository(db)
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	u := models.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func roomCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	db.Model(&models.ChatRoom{}).Count(&n)
	return n
}

// --------------------------------------------------
// get or create
// --------------------------------------------------

func TestGetOrCreateRoomIsIdempotent(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewGetOrCreateRoom(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")

	first, err := uc.Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)
	assert.Equal(t, "Conversa", first.Name)
	assert.Len(t, first.Participants, 2)

	// mesmo conjunto em ordem invertida resolve para a mesma sala
	second, err := uc.Execute(context.Background(), []string{b.ID, a.ID}, "outro nome")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), roomCount(t, db))
}

func TestGetOrCreateRoomDistinctSets(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewGetOrCreateRoom(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")
	c := seedUser(t, db, "clara")

	pair, err := uc.Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)

	// superconjunto é outra sala: igualdade exata, não contém
	trio, err := uc.Execute(context.Background(), []string{a.ID, b.ID, c.ID}, "")
	assert.NoError(t, err)
	assert.NotEqual(t, pair.ID, trio.ID)
	assert.Equal(t, int64(2), roomCount(t, db))
}

func TestGetOrCreateRoomRejectsBadInput(t *testing.T) {
	_, repo := newChatRepo(t)
	uc := NewGetOrCreateRoom(repo)

	_, err := uc.Execute(context.Background(), nil, "")
	assert.Error(t, err)
	assert.False(t, httperr.IsNotFound(err))

	_, err = uc.Execute(context.Background(), []string{"not-a-uuid"}, "")
	assert.True(t, httperr.IsNotFound(err))
}

func TestCreateRoomDoesNotDeduplicate(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewCreateRoom(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")

	first, err := uc.Execute(context.Background(), []string{a.ID, b.ID}, "Sala 1")
	assert.NoError(t, err)
	assert.Equal(t, "Sala 1", first.Name)

	second, err := uc.Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)
	assert.Equal(t, "Conversa", second.Name)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(2), roomCount(t, db))
}

// --------------------------------------------------
// tutor × prestador
// --------------------------------------------------

func TestGetOrCreateRoomForTutorAndProvider(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewGetOrCreateRoomForTutorAndProvider(repo, NewGetOrCreateRoom(repo))

	tutorUser := seedUser(t, db, "joana")
	providerUser := seedUser(t, db, "petshop")
	provider := models.Provider{Name: "PetShop", UserID: &providerUser.ID}
	assert.NoError(t, db.Create(&provider).Error)

	room, err := uc.Execute(context.Background(), tutorUser.ID, provider.ID)
	assert.NoError(t, err)
	assert.Len(t, room.Participants, 2)

	again, err := uc.Execute(context.Background(), tutorUser.ID, provider.ID)
	assert.NoError(t, err)
	assert.Equal(t, room.ID, again.ID)
}

func TestGetOrCreateRoomProviderErrors(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewGetOrCreateRoomForTutorAndProvider(repo, NewGetOrCreateRoom(repo))

	tutorUser := seedUser(t, db, "joana")

	_, err := uc.Execute(context.Background(), tutorUser.ID, "bad-id")
	assert.True(t, httperr.IsNotFound(err))

	_, err = uc.Execute(context.Background(), tutorUser.ID, uuid.NewString())
	assert.True(t, httperr.IsNotFound(err))

	// prestador sem usuário vinculado não pode conversar
	orphan := models.Provider{Name: "Sem usuário"}
	assert.NoError(t, db.Create(&orphan).Error)

	_, err = uc.Execute(context.Background(), tutorUser.ID, orphan.ID)
	assert.True(t, httperr.IsNotFound(err))
}

// --------------------------------------------------
// messages
// --------------------------------------------------

func TestSendMessageAndListOrdering(t *testing.T) {
	db, repo := newChatRepo(t)
	send := NewSendMessage(repo)
	list := NewListMessages(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")

	room, err := NewGetOrCreateRoom(repo).Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)

	for _, content := range []string{"oi", "tudo bem?", "sim"} {
		_, err := send.Execute(context.Background(), a.ID, SendMessageInput{
			RoomID:  room.ID,
			Content: content,
		})
		assert.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	msgs, err := list.Execute(context.Background(), room.ID)
	assert.NoError(t, err)
	assert.Len(t, msgs, 3)
	assert.Equal(t, "oi", msgs[0].Content)
	assert.Equal(t, "sim", msgs[2].Content)
	assert.Equal(t, "ana", msgs[0].Sender.Name)
}

func TestSendMessageRoomNotFound(t *testing.T) {
	_, repo := newChatRepo(t)
	send := NewSendMessage(repo)

	// escrita rejeita tanto id inexistente quanto malformado
	_, err := send.Execute(context.Background(), uuid.NewString(), SendMessageInput{
		RoomID:  uuid.NewString(),
		Content: "oi",
	})
	assert.True(t, httperr.IsNotFound(err))

	_, err = send.Execute(context.Background(), uuid.NewString(), SendMessageInput{
		RoomID:  "###",
		Content: "oi",
	})
	assert.True(t, httperr.IsNotFound(err))
}

func TestListMessagesMalformedIDIsEmpty(t *testing.T) {
	_, repo := newChatRepo(t)
	list := NewListMessages(repo)

	// leitura degrada para vazio em vez de rejeitar
	msgs, err := list.Execute(context.Background(), "###")
	assert.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestSendMessageRefreshesRoomTimestamp(t *testing.T) {
	db, repo := newChatRepo(t)
	send := NewSendMessage(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")

	room, err := NewGetOrCreateRoom(repo).Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)

	stale := time.Now().Add(-time.Hour)
	assert.NoError(t, repo.TouchRoom(context.Background(), room.ID, stale))

	_, err = send.Execute(context.Background(), a.ID, SendMessageInput{
		RoomID:  room.ID,
		Content: "oi",
	})
	assert.NoError(t, err)

	refreshed, err := repo.GetRoomByID(context.Background(), room.ID)
	assert.NoError(t, err)
	assert.True(t, refreshed.UpdatedAt.After(stale.Add(time.Minute)))
}

// --------------------------------------------------
// rooms by user
// --------------------------------------------------

func TestListRoomsByUserOrdering(t *testing.T) {
	db, repo := newChatRepo(t)
	uc := NewListRoomsByUser(repo)
	getOrCreate := NewGetOrCreateRoom(repo)

	a := seedUser(t, db, "ana")
	b := seedUser(t, db, "bruno")
	c := seedUser(t, db, "clara")

	withB, err := getOrCreate.Execute(context.Background(), []string{a.ID, b.ID}, "")
	assert.NoError(t, err)
	withC, err := getOrCreate.Execute(context.Background(), []string{a.ID, c.ID}, "")
	assert.NoError(t, err)

	base := time.Now()
	assert.NoError(t, repo.TouchRoom(context.Background(), withB.ID, base.Add(-time.Hour)))
	assert.NoError(t, repo.TouchRoom(context.Background(), withC.ID, base))

	rooms, err := uc.Execute(context.Background(), a.ID)
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)
	// sala com atividade mais recente primeiro
	assert.Equal(t, withC.ID, rooms[0].ID)
	assert.Equal(t, withB.ID, rooms[1].ID)

	// bruno só vê a sala dele
	rooms, err = uc.Execute(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, withB.ID, rooms[0].ID)

	// id malformado degrada para vazio
	rooms, err = uc.Execute(context.Background(), "###")
	assert.NoError(t, err)
	assert.Empty(t, rooms)
}
