package team

// DefaultAliases is the built-in alias table for Liga MX feed spellings.
// Rows from the team_aliases table are appended after these, so deployments
// can extend coverage without a release.
//
// Keep this list alphabetical by team so review diffs stay readable.
func DefaultAliases() []Alias {
	return []Alias{
		{TeamID: 1, Alias: "América"},
		{TeamID: 1, Alias: "Club America"},
		{TeamID: 1, Alias: "Club América"},
		{TeamID: 1, Alias: "Aguilas"},
		{TeamID: 1, Alias: "Águilas del América"},
		{TeamID: 2, Alias: "Atlas FC"},
		{TeamID: 2, Alias: "Rojinegros"},
		{TeamID: 3, Alias: "Atletico San Luis"},
		{TeamID: 3, Alias: "Atlético de San Luis"},
		{TeamID: 3, Alias: "San Luis"},
		{TeamID: 4, Alias: "Cruz Azul FC"},
		{TeamID: 4, Alias: "La Maquina"},
		{TeamID: 4, Alias: "La Máquina"},
		{TeamID: 5, Alias: "Guadalajara"},
		{TeamID: 5, Alias: "CD Guadalajara"},
		{TeamID: 5, Alias: "Chivas Guadalajara"},
		{TeamID: 6, Alias: "FC Juarez"},
		{TeamID: 6, Alias: "FC Juárez"},
		{TeamID: 6, Alias: "Bravos de Juarez"},
		{TeamID: 7, Alias: "Club Leon"},
		{TeamID: 7, Alias: "Club León"},
		{TeamID: 7, Alias: "La Fiera"},
		{TeamID: 8, Alias: "Mazatlan FC"},
		{TeamID: 8, Alias: "Mazatlán FC"},
		{TeamID: 9, Alias: "CF Monterrey"},
		{TeamID: 9, Alias: "Rayados"},
		{TeamID: 9, Alias: "Rayados de Monterrey"},
		{TeamID: 10, Alias: "Club Necaxa"},
		{TeamID: 10, Alias: "Rayos"},
		{TeamID: 11, Alias: "Pachuca CF"},
		{TeamID: 11, Alias: "CF Pachuca"},
		{TeamID: 11, Alias: "Tuzos"},
		{TeamID: 12, Alias: "Puebla FC"},
		{TeamID: 12, Alias: "Club Puebla"},
		{TeamID: 12, Alias: "La Franja"},
		{TeamID: 13, Alias: "UNAM"},
		{TeamID: 13, Alias: "Pumas UNAM"},
		{TeamID: 13, Alias: "Universidad Nacional"},
		{TeamID: 14, Alias: "Queretaro FC"},
		{TeamID: 14, Alias: "Querétaro FC"},
		{TeamID: 14, Alias: "Gallos Blancos"},
		{TeamID: 15, Alias: "Santos"},
		{TeamID: 15, Alias: "Club Santos Laguna"},
		{TeamID: 15, Alias: "Guerreros"},
		{TeamID: 16, Alias: "Tigres"},
		{TeamID: 16, Alias: "Tigres UANL"},
		{TeamID: 16, Alias: "UANL"},
		{TeamID: 17, Alias: "Tijuana"},
		{TeamID: 17, Alias: "Club Tijuana"},
		{TeamID: 17, Alias: "Xolos"},
		{TeamID: 17, Alias: "Xolos de Tijuana"},
		{TeamID: 18, Alias: "Toluca FC"},
		{TeamID: 18, Alias: "Deportivo Toluca"},
		{TeamID: 18, Alias: "Diablos Rojos"},
	}
}
