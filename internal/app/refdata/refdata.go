// Package refdata holds the static reference tables the registration form is
// validated against: Cameroonian regions and their departments, and the
// academic series available per examination type. The tables are fixed for a
// contest edition and never read from the database.
package refdata

// Regions lists the ten administrative regions.
var Regions = []string{
	"Adamaoua",
	"Centre",
	"Est",
	"Extrême-Nord",
	"Littoral",
	"Nord",
	"Nord-Ouest",
	"Ouest",
	"Sud",
	"Sud-Ouest",
}

// departmentsByRegion maps each region to its departments.
var departmentsByRegion = map[string][]string{
	"Adamaoua": {
		"Djérem", "Faro-et-Déo", "Mayo-Banyo", "Mbéré", "Vina",
	},
	"Centre": {
		"Haute-Sanaga", "Lekié", "Mbam-et-Inoubou", "Mbam-et-Kim", "Méfou-et-Afamba",
		"Méfou-et-Akono", "Mfoundi", "Nyong-et-Kéllé", "Nyong-et-Mfoumou", "Nyong-et-So'o",
	},
	"Est": {
		"Boumba-et-Ngoko", "Haut-Nyong", "Kadey", "Lom-et-Djérem",
	},
	"Extrême-Nord": {
		"Diamaré", "Logone-et-Chari", "Mayo-Danay", "Mayo-Kani", "Mayo-Sava", "Mayo-Tsanaga",
	},
	"Littoral": {
		"Moungo", "Nkam", "Sanaga-Maritime", "Wouri",
	},
	"Nord": {
		"Bénoué", "Faro", "Mayo-Louti", "Mayo-Rey",
	},
	"Nord-Ouest": {
		"Boyo", "Bui", "Donga-Mantung", "Menchum", "Mezam", "Momo", "Ngo-Ketunjia",
	},
	"Ouest": {
		"Haut-Nkam", "Hauts-Plateaux", "Koung-Khi", "Menoua", "Mifi", "Ndé", "Noun",
	},
	"Sud": {
		"Dja-et-Lobo", "Mvila", "Océan", "Vallée-du-Ntem",
	},
	"Sud-Ouest": {
		"Fako", "Koupé-Manengouba", "Lebialem", "Manyu", "Meme", "Ndian",
	},
}

// seriesByType maps an academic type to its valid series codes.
var seriesByType = map[string][]string{
	"Général":   {"A", "C", "D", "E"},
	"Technique": {"F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "IH", "MISE"},
}

// Mentions lists the honors bands awarded with an academic result.
var Mentions = []string{"Passable", "Assez Bien", "Bien", "Très Bien"}

// AcademicTypes lists the examination tracks.
var AcademicTypes = []string{"Général", "Technique"}

// IsRegion reports whether name is a known region.
func IsRegion(name string) bool {
	_, ok := departmentsByRegion[name]
	return ok
}

// DepartmentsOf returns the departments of a region, or nil for an unknown
// region.
func DepartmentsOf(region string) []string {
	return departmentsByRegion[region]
}

// IsDepartmentOf reports whether department belongs to region.
func IsDepartmentOf(region, department string) bool {
	for _, d := range departmentsByRegion[region] {
		if d == department {
			return true
		}
	}
	return false
}

// SeriesOf returns the series codes valid for an academic type, or nil for an
// unknown type.
func SeriesOf(academicType string) []string {
	return seriesByType[academicType]
}

// IsSeriesOf reports whether series is valid for the given academic type.
func IsSeriesOf(academicType, series string) bool {
	for _, s := range seriesByType[academicType] {
		if s == series {
			return true
		}
	}
	return false
}

// IsMention reports whether mention is a known honors band.
func IsMention(mention string) bool {
	for _, m := range Mentions {
		if m == mention {
			return true
		}
	}
	return false
}

// IsAcademicType reports whether t is a known examination track.
func IsAcademicType(t string) bool {
	_, ok := seriesByType[t]
	return ok
}
