package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aakritipkh/hotel-booking/internal/core/domain"
	"github.com/aakritipkh/hotel-booking/internal/core/ports"
)

var _ ports.RoomCatalogue = (*RoomRepository)(nil)

// RoomRepository loads the room inventory file once at construction and
// serves it read-only afterwards. The inventory columns are
// room_id, room_type, max_people, price_per_night with a header row.
type RoomRepository struct {
	rooms []domain.RoomType
	index map[string]int
}

// NewRoomRepository reads the inventory at path. For each room type only
// the cheapest room is kept: a strictly lower price replaces the entry,
// an exact price tie keeps the first one seen. Catalogue order is the
// order types first appear in the file.
func NewRoomRepository(path string) (*RoomRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewCatalogueLoadError(fmt.Sprintf("room inventory file %q could not be opened", path), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, domain.NewCatalogueLoadError(fmt.Sprintf("room inventory file %q is malformed", path), err)
	}
	if len(records) == 0 {
		return nil, domain.NewCatalogueLoadError(fmt.Sprintf("room inventory file %q is missing its header row", path), nil)
	}

	repo := &RoomRepository{index: make(map[string]int)}
	for _, rec := range records[1:] {
		room, err := parseRoomRecord(rec)
		if err != nil {
			return nil, err
		}
		if i, seen := repo.index[room.Name]; seen {
			if room.PricePerNight < repo.rooms[i].PricePerNight {
				repo.rooms[i] = room
			}
			continue
		}
		repo.index[room.Name] = len(repo.rooms)
		repo.rooms = append(repo.rooms, room)
	}

	return repo, nil
}

// Rooms returns the catalogue in inventory order.
func (r *RoomRepository) Rooms() []domain.RoomType {
	return r.rooms
}

func parseRoomRecord(rec []string) (domain.RoomType, error) {
	if len(rec) != 4 {
		return domain.RoomType{}, domain.NewCatalogueLoadError(
			fmt.Sprintf("room inventory row has %d columns, want 4", len(rec)), nil)
	}

	roomID, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return domain.RoomType{}, domain.NewCatalogueLoadError(
			fmt.Sprintf("room inventory row has a non-numeric room_id %q", rec[0]), err)
	}
	maxPeople, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil {
		return domain.RoomType{}, domain.NewCatalogueLoadError(
			fmt.Sprintf("room inventory row has a non-numeric max_people %q", rec[2]), err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return domain.RoomType{}, domain.NewCatalogueLoadError(
			fmt.Sprintf("room inventory row has a non-numeric price_per_night %q", rec[3]), err)
	}

	return domain.RoomType{
		Name:          rec[1],
		RoomID:        roomID,
		MaxPeople:     maxPeople,
		PricePerNight: price,
	}, nil
}
