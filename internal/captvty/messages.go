package captvty

import "fmt"

// Spoken messages and dialog texts, in the language of the application.
const (
	msgDirectSelected    = "Menu direct sélectionné"
	msgCatchupSelected   = "Menu rattrapage sélectionné"
	msgSelectMode        = "Sélectionnez un menu entre direct (CTRL+D) et rattrapage (CTRL+R)"
	msgLoadingChannels   = "Chargement de la liste des chaines"
	msgChannelListFocus  = "Liste des chaines sélectionnée"
	msgChannelListFailed = "Une erreur fatale s'est produite lors du chargement de la liste des chaînes"
	msgModeButtonsFailed = "Impossible de trouver les boutons de mode de Captvty"
	msgProgramsPending   = "La liste des programmes n'est pas encore disponible en mode rattrapage"
	msgRecordingPending  = "La programmation d'un enregistrement n'est pas encore disponible"

	titleChannelList = "Liste des chaines"
	titleOptions     = "Choisissez une option"
)

// Direct-mode options offered after a channel is chosen.
const (
	OptionInternalPlayer = "Visionner en direct avec le lecteur interne"
	OptionExternalPlayer = "Visionner en direct avec un lecteur externe"
	OptionRecord         = "Programmer l'enregistrement"
)

// DirectOptions lists the Direct-mode options in dialog order.
var DirectOptions = []string{OptionInternalPlayer, OptionExternalPlayer, OptionRecord}

func msgUnreachable(channel string) string {
	return fmt.Sprintf("Impossible d'atteindre la chaîne %s dans la liste", channel)
}
