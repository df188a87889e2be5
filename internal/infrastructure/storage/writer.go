package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const (
	MagicHeader string = `CRPL` // 4 байта
	Version1    uint32 = 1

	FileExt = ".crpl"
)

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte   // 4 байта
	Version      uint32    // 4 байта
	ID           ulid.ULID // 16 байт
	LayoutSeed   int64     // 8 байт
	GameplaySeed int64     // 8 байт
	ActionCount  int32     // 4 байта
}

// ActionHeader — заголовок каждой записи действия.
type ActionHeader struct {
	Turn       int32  // 4
	Floor      int32  // 4
	ActionType uint8  // 1
	PayloadLen uint16 // 2
}

// ReplayStore хранит записи партий в каталоге, по файлу на партию.
type ReplayStore struct {
	Dir string
	log *logrus.Entry
}

func NewReplayStore(dir string) (*ReplayStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayStore{Dir: dir, log: logger.Component("replay_store")}, nil
}

// Path — имя файла записи. ULID сортируется по времени создания.
func (s *ReplayStore) Path(id ulid.ULID) string {
	return filepath.Join(s.Dir, "replay_"+id.String()+FileExt)
}

// Save пишет запись и возвращает путь к файлу.
func (s *ReplayStore) Save(session *domain.ReplaySession) (string, error) {
	path := s.Path(session.ID)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, session); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"path":    path,
		"actions": len(session.Actions),
	}).Info("replay saved")
	return path, nil
}

// Encode пишет запись в двоичном формате.
func Encode(w io.Writer, s *domain.ReplaySession) error {
	// 1. Глобальный заголовок
	header := ReplayFileHeader{
		Version:      Version1,
		ID:           s.ID,
		LayoutSeed:   s.LayoutSeed,
		GameplaySeed: s.GameplaySeed,
		ActionCount:  int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Действия
	for i, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("action %d: payload too long: %d", i, payloadLen)
		}

		actHeader := ActionHeader{
			Turn:       int32(act.Turn),
			Floor:      int32(act.Floor),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
