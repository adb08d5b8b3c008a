package datefmt

// Builtin languages. The tables are data only; nothing mutates them after
// package init.
var (
	// English is the default language for every entry point that does not
	// take one explicitly.
	English Language = staticLanguage{
		code: "en",
		months: [12]string{
			"January",
			"February",
			"March",
			"April",
			"May",
			"June",
			"July",
			"August",
			"September",
			"October",
			"November",
			"December",
		},
		shortMonths: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "June", "July", "Aug", "Sept", "Oct", "Nov", "Dec",
		},
		weekdays: [7]string{
			"Monday",
			"Tuesday",
			"Wednesday",
			"Thursday",
			"Friday",
			"Saturday",
			"Sunday",
		},
		shortWeekdays: [7]string{
			"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
		},
	}

	Spanish Language = staticLanguage{
		code: "es",
		months: [12]string{
			"enero",
			"febrero",
			"marzo",
			"abril",
			"mayo",
			"junio",
			"julio",
			"agosto",
			"septiembre",
			"octubre",
			"noviembre",
			"diciembre",
		},
		shortMonths: [12]string{
			"enero", "feb", "marzo", "abr", "mayo", "jun", "jul", "agosto", "set", "oct", "nov", "dic",
		},
		weekdays: [7]string{
			"lunes",
			"martes",
			"miércoles",
			"jueves",
			"viernes",
			"sábado",
			"domingo",
		},
		shortWeekdays: [7]string{
			"Lu", "Ma", "Mi", "Ju", "Vi", "Sa", "Do",
		},
	}

	French Language = staticLanguage{
		code: "fr",
		months: [12]string{
			"janvier",
			"février",
			"mars",
			"avril",
			"mai",
			"juin",
			"juillet",
			"août",
			"septembre",
			"octobre",
			"novembre",
			"décembre",
		},
		shortMonths: [12]string{
			"janv", "févr", "mars", "avril", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc",
		},
		weekdays: [7]string{
			"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
		},
		shortWeekdays: [7]string{
			"lun", "mar", "mer", "jeu", "ven", "sam", "dim",
		},
	}
)
