package salary

import "time"

// monthRange menghasilkan window inklusif [hari pertama, hari terakhir]
// untuk bulan/tahun yang diminta. Hari terakhir dihitung sebagai sehari
// sebelum tanggal 1 bulan berikutnya, jadi panjang bulan yang bervariasi
// dan tahun kabisat ikut tertangani.
func monthRange(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
