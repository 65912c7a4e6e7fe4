package mask

import "errors"

var (
	// ErrNotFound: İstenen kayıt veritabanında bulunamadı.
	ErrNotFound = errors.New("record not found")

	// ErrDatabase: Beklenmeyen veritabanı hatası.
	ErrDatabase = errors.New("database internal error")

	// ErrTableMissing: Kritik altyapı hatası (countries tablosu yok).
	ErrTableMissing = errors.New("critical: database table missing")

	// ErrEmptyTable: Kaynak hiç ülke kaydı döndürmedi.
	ErrEmptyTable = errors.New("country table is empty")

	// ErrNoRepository: Veritabanı tanımlı değil, tablo yeniden yüklenemez.
	ErrNoRepository = errors.New("country repository not configured")
)
